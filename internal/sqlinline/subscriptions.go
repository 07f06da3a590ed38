package sqlinline

const QSelectSubscriptionByUser = `--sql 3f1c6a52-9b0e-4d2a-8f67-1d9e42ab7c01
select id, user_id, coalesce(stripe_customer_id, ''), coalesce(stripe_subscription_id, ''),
       status, coalesce(plan_interval, ''), current_period_end, created_at, updated_at
from subscriptions
where user_id = $1::uuid
limit 1;
`

const QInsertPendingSubscription = `--sql 7a4d90ce-2f13-48b6-9c3d-5e88f1a602b4
insert into subscriptions (id, user_id, stripe_customer_id, status, created_at, updated_at)
values (gen_random_uuid(), $1::uuid, $2, 'inactive', now(), now())
on conflict (user_id) do update set
    stripe_customer_id = coalesce(nullif(excluded.stripe_customer_id, ''), subscriptions.stripe_customer_id),
    updated_at = now()
returning stripe_customer_id;
`

const QUpdateSubscriptionByCustomer = `--sql b2e8c7d1-64af-49e0-a5b3-90c41d2ef853
update subscriptions
set status = $2,
    plan_interval = $3,
    stripe_subscription_id = $4,
    current_period_end = $5,
    updated_at = now()
where stripe_customer_id = $1
returning user_id;
`

const QSetSubscriptionStatus = `--sql c91d50fb-8e27-4ab1-b6f4-72a3e8d90c15
insert into subscriptions (id, user_id, status, plan_interval, created_at, updated_at)
select gen_random_uuid(), u.id, $2, $3, now(), now()
from users u
where ($1 = u.id::text or $1 = u.email)
on conflict (user_id) do update set
    status = excluded.status,
    plan_interval = coalesce(nullif(excluded.plan_interval, ''), subscriptions.plan_interval),
    updated_at = now()
returning user_id, status;
`
