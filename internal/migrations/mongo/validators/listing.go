package validators

import "go.mongodb.org/mongo-driver/bson"

var ListingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"owner_phone", "street", "city", "region", "postal_code", "created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":         bson.M{"bsonType": "objectId"},
			"owner_phone": bson.M{"bsonType": "string"},
			"street":      bson.M{"bsonType": "string"},
			"city":        bson.M{"bsonType": "string"},
			"region":      bson.M{"bsonType": "string"},
			"postal_code": bson.M{"bsonType": "string"},
			"open_time":   bson.M{"bsonType": "string"},
			"close_time":  bson.M{"bsonType": "string"},
			"available_days": bson.M{
				"bsonType": "array",
				"maxItems": 7,
				"items": bson.M{
					"bsonType": "int",
					"minimum":  0,
					"maximum":  6,
				},
			},
			"hourly_rate": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},
			"photo_url":  bson.M{"bsonType": "string"},
			"active":     bson.M{"bsonType": "bool"},
			"time_zone":  bson.M{"bsonType": "string"},
			"created_at": bson.M{"bsonType": "date"},
		},
	},
}
