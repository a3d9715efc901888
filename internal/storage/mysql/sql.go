package mysql

// params and itinerary are stored as JSON documents; the itinerary column
// keeps activity order exactly as normalized.
const insertTripSQL = `
INSERT INTO trips
  (id, destination, days, used_fallback, params, itinerary, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  destination   = VALUES(destination),
  days          = VALUES(days),
  used_fallback = VALUES(used_fallback),
  params        = VALUES(params),
  itinerary     = VALUES(itinerary)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getTripSQL = `
SELECT id, params, itinerary, created_at
FROM trips
WHERE id = ?
`

// Newest first; matches idx_trips_created.
const listTripsSQL = `
SELECT id, destination, days, used_fallback, created_at
FROM trips
ORDER BY created_at DESC, id DESC
LIMIT ?
`
