package sqlinline

const QInsertProvider = `--sql b793b813-03cf-447c-8e21-d8dca40153d8
insert into providers(name, type, contact, address, city, created_at, updated_at)
values (?, ?, ?, ?, ?, now(), now())
`

const QSelectProvider = `--sql 41e84331-d775-4aae-ba9f-2fd42cac8c5c
select id, name, type, contact, address, city, created_at, updated_at
from providers
where id = ?
`

// QListProvidersBase is completed by the repository with an optional city
// filter and the paging bounds.
const QListProvidersBase = `--sql c1e4d992-0aa3-47f4-9162-f2257ed31860
select id, name, type, contact, address, city, created_at, updated_at
from providers`

// QUpdateProviderBase is completed by the repository with the set list.
const QUpdateProviderBase = `--sql e5758372-2236-47ff-ab42-44738ce7cbbb
update providers`

const QDeleteProvider = `--sql 669fc5df-6de0-4b35-a051-d7bac357b41f
delete from providers
where id = ?
`

const QProviderExists = `--sql 1db8f33e-6b9e-4e75-95c9-0ca71b230fdf
select id
from providers
where id = ?
`

const QProviderContact = `--sql 1434b6d3-8ab7-4f38-92d4-c93e68250f3b
select name, contact, address
from providers
where id = ?
`
