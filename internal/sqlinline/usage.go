package sqlinline

const QInsertUsageEvent = `--sql 6dd4a1b7-03c9-4e5f-8a26-b47f90e1d5a2
insert into usage_events (id, user_id, action, success, properties, created_at)
values (gen_random_uuid(), $1::uuid, $2, $3, $4::jsonb, now());
`

const QStatsSummary = `--sql 84f2c6e0-17ad-4b93-9d58-3c60b2a7f419
select
    (select count(*) from users) as total_users,
    (select count(*) from usage_events where action = 'GENERATE_EMAIL') as template_drafts,
    (select count(*) from usage_events where action = 'GENERATE_SMART_EMAIL') as smart_drafts,
    (select count(*) from usage_events where success = false) as failures,
    (select count(*) from usage_events where created_at > now() - interval '24 hours') as drafts_last_24h;
`
