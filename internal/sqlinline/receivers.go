package sqlinline

const QInsertReceiver = `--sql 55df8a62-7b85-4115-8154-9e8b2800479c
insert into receivers(name, contact, address, city, created_at, updated_at)
values (?, ?, ?, ?, now(), now())
`

const QSelectReceiver = `--sql 68724884-1b31-49b3-880f-88ff5a552d69
select id, name, contact, address, city, created_at, updated_at
from receivers
where id = ?
`

// QListReceiversBase is completed by the repository with an optional city
// filter and the paging bounds.
const QListReceiversBase = `--sql 120079d8-c37f-42ae-bfef-31a47b4da20a
select id, name, contact, address, city, created_at, updated_at
from receivers`

// QUpdateReceiverBase is completed by the repository with the set list.
const QUpdateReceiverBase = `--sql d6ed41b3-2f02-48f3-a103-388f5b3e0ba5
update receivers`

const QDeleteReceiver = `--sql 569e0a73-1da9-4ec9-a0e9-071a1a340280
delete from receivers
where id = ?
`

const QReceiverExists = `--sql 460c67fb-f762-441f-b972-ee70a97f7c24
select id
from receivers
where id = ?
`

const QReceiverContact = `--sql d538c44c-f1a9-4c61-a6a4-7e7eca666401
select name, contact, address
from receivers
where id = ?
`
