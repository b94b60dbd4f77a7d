package validators

import "go.mongodb.org/mongo-driver/bson"

var WorkoutPlanValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"user_id",
			"duration_weeks",
			"workouts",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 36,
				"maxLength": 36,
			},

			"user_id": bson.M{
				"bsonType": "long",
			},

			"duration_weeks": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  52,
			},

			"workouts": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items": bson.M{
					"bsonType": "array",
					"minItems": 1,
					"items": bson.M{
						"bsonType": "object",
						"required": []string{"exercise", "sets", "reps"},
						"properties": bson.M{
							"sets": bson.M{
								"bsonType": "int",
								"minimum":  1,
								"maximum":  20,
							},
							"reps": bson.M{
								"bsonType": "int",
								"minimum":  1,
								"maximum":  100,
							},
							"rest_between_sets": bson.M{
								"bsonType": "int",
								"minimum":  0,
								"maximum":  600,
							},
						},
					},
				},
			},

			"notes": bson.M{
				"bsonType": "string",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
