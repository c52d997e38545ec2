package mysql

const upsertTravelSQL = `
INSERT INTO travels
  (id, title, countries, destinations, hotels, flights, transfers, activities, ai_summary, hero_image, raw)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title        = VALUES(title),
  countries    = VALUES(countries),
  destinations = VALUES(destinations),
  hotels       = VALUES(hotels),
  flights      = VALUES(flights),
  transfers    = VALUES(transfers),
  activities   = VALUES(activities),
  ai_summary   = VALUES(ai_summary),
  hero_image   = VALUES(hero_image),
  raw          = VALUES(raw),
  updated_at   = CURRENT_TIMESTAMP
`

const insertMissSQL = `
INSERT INTO import_misses (id, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const travelColumns = `
  id, title, countries, destinations, hotels, flights, transfers, activities, ai_summary, hero_image, raw
`

// Newest import first; the search batch is capped, so recency decides
// which records make the cut.
const fetchTravelsSQL = `
SELECT ` + travelColumns + `
FROM travels
ORDER BY updated_at DESC, id
LIMIT ?
`

const getTravelSQL = `
SELECT ` + travelColumns + `
FROM travels
WHERE id = ?
`
