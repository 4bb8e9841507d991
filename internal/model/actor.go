package model

import "github.com/google/uuid"

// SystemActorID marks writes performed by background jobs rather than a
// person, e.g. the reservation expiry sweeper.
var SystemActorID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
