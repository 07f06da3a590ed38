package sqlinline

const QSelectUserByID = `--sql 1e7b3fa9-5c42-4d80-bb16-0a9d87e2c634
select id, email, coalesce(name, ''), created_at, updated_at
from users
where id = $1::uuid
limit 1;
`
