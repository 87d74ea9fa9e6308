package sqlinline

// Analysis reports. Claimed listings stand in for the old claims ledger:
// a claim is a listing with status = 'claimed' and a receiver attached.

const QReportCityOverview = `--sql 99b787ca-9531-45d0-b376-747d8b35b1a2
select p.city,
       count(distinct p.id) as providers_count,
       (select count(*) from receivers r where r.city = p.city) as receivers_count
from providers p
group by p.city
order by p.city
`

const QReportTopProviderTypes = `--sql c81e48a5-4059-482c-835d-bfc0144b716d
select p.type, sum(l.quantity) as total_quantity
from providers p
join listings l on p.id = l.provider_id
group by p.type
order by total_quantity desc
limit 5
`

const QReportProviderContactsByCity = `--sql 5eba3c3c-80f2-4bc0-91a9-75a3e684012f
select name, contact, address
from providers
where city = ?
order by name
`

const QReportTopReceivers = `--sql 67a5e6f9-6973-4496-b485-68596ac4e0aa
select r.name, r.contact, sum(l.quantity) as total_claimed
from receivers r
join listings l on l.receiver_id = r.id
where l.status = 'claimed'
group by r.id, r.name, r.contact
order by total_claimed desc
limit 10
`

const QReportTotalAvailableQuantity = `--sql 3ddc7993-be90-45b2-8f87-ffce1f0772d5
select coalesce(sum(quantity), 0) as total_quantity
from listings
where status = 'available'
`

const QReportBusiestCity = `--sql fcf03011-64b9-4563-bff7-0ac08bcfed82
select location as city, count(*) as listings_count
from listings
group by location
order by listings_count desc
limit 1
`

const QReportTopFoodTypes = `--sql e521281a-db06-4367-81af-706fafcbd690
select food_type, count(*) as listings_count
from listings
group by food_type
order by listings_count desc
limit 5
`

const QReportClaimsPerFood = `--sql 2581c62c-33dd-4e96-ae8b-9a215204c41a
select food_name, count(*) as claims_count
from listings
where status = 'claimed'
group by food_name
order by claims_count desc
`

const QReportTopProviderByClaims = `--sql 9b24175e-ced0-4a04-a37f-c367c5e2cc89
select p.name, count(*) as claimed_listings
from providers p
join listings l on p.id = l.provider_id
where l.status = 'claimed'
group by p.id, p.name
order by claimed_listings desc
limit 1
`

const QReportStatusBreakdown = `--sql 5a4c1eee-865f-45cb-a9d3-d6258c2fc400
select status,
       count(*) as listings_count,
       round(100 * count(*) / (select count(*) from listings), 2) as percentage
from listings
group by status
order by listings_count desc
`

const QReportAvgClaimedQuantityPerReceiver = `--sql c8573c95-5324-4a90-9339-2f25eaf8efee
select r.name, avg(l.quantity) as avg_quantity_claimed
from receivers r
join listings l on l.receiver_id = r.id
where l.status = 'claimed'
group by r.id, r.name
order by avg_quantity_claimed desc
`

const QReportMostClaimedMealType = `--sql 5ee85606-33d4-4207-80e6-f866c0d46f78
select meal_type, count(*) as claims_count
from listings
where status = 'claimed'
group by meal_type
order by claims_count desc
`

const QReportDonationsPerProvider = `--sql bd0d9814-fdcf-464b-91ba-ace44e1f31d8
select p.name, sum(l.quantity) as total_quantity_donated
from providers p
join listings l on p.id = l.provider_id
group by p.id, p.name
order by total_quantity_donated desc
`

const QReportTopCitiesByClaimedQuantity = `--sql fcae3274-c6d9-43b4-84fd-73af1f3eca95
select location as city, sum(quantity) as total_claimed
from listings
where status = 'claimed'
group by location
order by total_claimed desc
limit 5
`

const QReportProvidersWithMostListings = `--sql 58a4e1f9-b8f9-41f0-ba53-e3f3b7ab0d06
select p.name, count(l.id) as listings_count
from providers p
join listings l on p.id = l.provider_id
group by p.id, p.name
order by listings_count desc
limit 5
`

const QReportExpiringSoon = `--sql 6eecab0a-0677-44c0-a70b-34e59cc581f1
select food_name, quantity, expiry_date, location
from listings
where status = 'available' and expiry_date <= date_add(curdate(), interval 2 day)
order by expiry_date asc
`
