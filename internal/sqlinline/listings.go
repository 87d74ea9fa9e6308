package sqlinline

const QInsertListing = `--sql f245d48d-aa54-48ec-ad4c-04fafbd69c73
insert into listings(food_name, food_type, meal_type, quantity, expiry_date, provider_id, location, status, created_at, updated_at)
values (?, ?, ?, ?, ?, ?, ?, 'available', now(), now())
`

const QSelectListing = `--sql 4fc3ec2f-9a91-407e-b4c5-1aa15fffda75
select id, food_name, food_type, meal_type, quantity, expiry_date, provider_id, receiver_id, location, status, claimed_at, created_at, updated_at
from listings
where id = ?
`

// QListListingsBase is completed by the repository with a parameterized
// where clause, the expiry ordering and the paging bounds.
const QListListingsBase = `--sql 14462551-4c1f-4979-9829-fb5b96a84588
select id, food_name, food_type, meal_type, quantity, expiry_date, provider_id, receiver_id, location, status, claimed_at, created_at, updated_at
from listings`

// QUpdateListingBase is completed by the repository with the set list and
// the guarded where clause.
const QUpdateListingBase = `--sql 60600385-9c8d-4cc3-b2c9-13f0aa25cf20
update listings`

const QClaimListing = `--sql 918806ba-a8f5-4ae2-af4a-1d478d0b0395
update listings
set status = 'claimed', receiver_id = ?, claimed_at = now(), updated_at = now()
where id = ? and status = 'available'
`

const QDeleteListing = `--sql 37bb011a-18c6-4b84-a965-45d38516d5bb
delete from listings
where id = ?
`

const QExpireOverdue = `--sql 342648fa-fa12-44a2-8219-876608e8786f
update listings
set status = 'expired', updated_at = now()
where status = 'available' and expiry_date < ?
`
