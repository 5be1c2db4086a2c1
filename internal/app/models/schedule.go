package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Schedule struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty"`
	Name           string                 `bson:"name"`
	Timezone       string                 `bson:"timezone"`
	OutputTimezone string                 `bson:"output_timezone,omitempty"`
	Definition     map[string]interface{} `bson:"definition"`
	CreatedAt      time.Time              `bson:"created_at"`
	UpdatedAt      time.Time              `bson:"updated_at"`
}
