package validators

import "go.mongodb.org/mongo-driver/bson"

var UserProfileValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"fitness_level",
			"goals",
			"available_equipment",
			"workout_duration_minutes",
			"workout_days_per_week",
			"updated_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "long",
			},

			"fitness_level": bson.M{
				"bsonType": "string",
				"enum": []string{
					"beginner",
					"intermediate",
					"advanced",
				},
			},

			"goals": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items": bson.M{
					"bsonType": "string",
					"enum": []string{
						"strength",
						"weight_loss",
						"muscle_gain",
						"endurance",
						"flexibility",
					},
				},
			},

			"available_equipment": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"workout_duration_minutes": bson.M{
				"bsonType": "int",
				"minimum":  10,
				"maximum":  240,
			},

			"workout_days_per_week": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  7,
			},

			"medical_limitations": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"additional_info": bson.M{
				"bsonType": "string",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
