package domain

// UnknownAccuracy describes any level outside 1–9.
const UnknownAccuracy = "Unknown accuracy"

var accuracyLevels = map[int]string{
	1: "Country level accuracy",
	2: "Region (state, province, prefecture, etc.) level accuracy",
	3: "Sub-region (county, municipality, etc.) level accuracy",
	4: "Town (city, village) level accuracy",
	5: "Post code (zip code) level accuracy",
	6: "Street level accuracy",
	7: "Intersection level accuracy",
	8: "Address level accuracy",
	9: "Premise (building name, property name, shopping center, etc.) level accuracy",
}

// DescribeAccuracy returns a human-readable description of an accuracy level.
func DescribeAccuracy(level int) string {
	if desc, ok := accuracyLevels[level]; ok {
		return desc
	}
	return UnknownAccuracy
}
