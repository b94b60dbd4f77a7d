package validators

import "go.mongodb.org/mongo-driver/bson"

var CalendarTokenValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"sealed_token",
			"updated_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "long",
			},

			"sealed_token": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
