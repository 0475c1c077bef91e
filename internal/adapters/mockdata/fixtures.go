package mockdata

import "github.com/aretw0/ishikawa/pkg/domain"

// Catalog returns the hand-authored fixture trees, keyed by "<category>-<level>".
// Fixtures exist for fire and slip incidents at levels 1-3; node counts grow
// 3 -> 7 -> 11 with analysis depth. Everything else falls through to the
// synthesizer.
func Catalog() map[string]domain.Tree {
	return map[string]domain.Tree{
		"fire-1": {
			{Key: 1, Name: "Fire Incident"},
			{Key: 2, Name: "Electrical Short Circuit", Parent: 1},
			{Key: 3, Name: "Property Damage", Parent: 1},
		},
		"fire-2": {
			{Key: 1, Name: "Fire Incident"},
			{Key: 2, Name: "Electrical Short Circuit", Parent: 1},
			{Key: 3, Name: "Flammable Material Storage", Parent: 1},
			{Key: 102, Name: "Aging Wiring", Parent: 2},
			{Key: 103, Name: "Missing Storage Protocol", Parent: 3},
			{Key: 4, Name: "Property Damage", Parent: 1},
			{Key: 5, Name: "Production Halt", Parent: 1},
		},
		"fire-3": {
			{Key: 1, Name: "Fire Incident"},
			{Key: 2, Name: "Electrical Short Circuit", Parent: 1},
			{Key: 3, Name: "Flammable Material Storage", Parent: 1},
			{Key: 4, Name: "Blocked Fire Exits", Parent: 1},
			{Key: 102, Name: "Aging Wiring", Parent: 2},
			{Key: 103, Name: "Missing Storage Protocol", Parent: 3},
			{Key: 202, Name: "Deferred Maintenance", Parent: 102},
			{Key: 5, Name: "Property Damage", Parent: 1},
			{Key: 6, Name: "Production Halt", Parent: 1},
			{Key: 305, Name: "Insurance Claim", Parent: 5},
			{Key: 306, Name: "Delivery Delays", Parent: 6},
		},
		"slip-1": {
			{Key: 1, Name: "Slip Incident"},
			{Key: 2, Name: "Wet Floor", Parent: 1},
			{Key: 3, Name: "Worker Injury", Parent: 1},
		},
		"slip-2": {
			{Key: 1, Name: "Slip Incident"},
			{Key: 2, Name: "Wet Floor", Parent: 1},
			{Key: 3, Name: "Missing Warning Signage", Parent: 1},
			{Key: 102, Name: "Leaking Pipe", Parent: 2},
			{Key: 103, Name: "Signage Not Restocked", Parent: 3},
			{Key: 4, Name: "Worker Injury", Parent: 1},
			{Key: 5, Name: "Lost Work Hours", Parent: 1},
		},
		"slip-3": {
			{Key: 1, Name: "Slip Incident"},
			{Key: 2, Name: "Wet Floor", Parent: 1},
			{Key: 3, Name: "Missing Warning Signage", Parent: 1},
			{Key: 4, Name: "Improper Footwear", Parent: 1},
			{Key: 102, Name: "Leaking Pipe", Parent: 2},
			{Key: 103, Name: "Signage Not Restocked", Parent: 3},
			{Key: 202, Name: "Deferred Plumbing Repair", Parent: 102},
			{Key: 5, Name: "Worker Injury", Parent: 1},
			{Key: 6, Name: "Lost Work Hours", Parent: 1},
			{Key: 305, Name: "Compensation Claim", Parent: 5},
			{Key: 306, Name: "Shift Coverage Gaps", Parent: 6},
		},
	}
}
