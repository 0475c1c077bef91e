package mockdata

import (
	"fmt"

	"github.com/aretw0/ishikawa/pkg/domain"
)

// Label pools for synthesized trees. The first two entries of each pool are
// used regardless of level.
var (
	causePool  = []string{"Human Factor", "Equipment Issue", "Environmental Factor", "Process Failure"}
	effectPool = []string{"Injury", "Property Damage", "Work Disruption", "Regulatory Issue"}
)

// Sub-node keys are the parent's sequential key plus a fixed offset, keeping
// them clear of the small sequential range so uniqueness holds without a
// global allocator.
const (
	subCauseOffset   = 100
	subCause2Offset  = 200
	subEffectOffset  = 300
	subEffect2Offset = 400
)

// Synthesize procedurally builds a cause-effect tree for incidents without a
// catalog fixture. It is a pure function of its inputs: the same (incident,
// level) pair always yields a structurally identical tree.
//
// Levels outside [1,3] are clamped: 0 and below behave as level 1, 4 and above
// as level 3.
func Synthesize(incident string, level int) domain.Tree {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}

	tree := domain.Tree{{Key: 1, Name: incident}}

	// Two causes and two effects hang off the root at every level.
	causeKeys := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		key := 2 + i
		causeKeys = append(causeKeys, key)
		tree = append(tree, domain.TreeNode{Key: key, Name: causePool[i], Parent: 1})
	}
	effectKeys := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		key := 4 + i
		effectKeys = append(effectKeys, key)
		tree = append(tree, domain.TreeNode{Key: key, Name: effectPool[i], Parent: 1})
	}

	if level >= 2 {
		for i, key := range causeKeys {
			tree = append(tree, domain.TreeNode{
				Key:    key + subCauseOffset,
				Name:   fmt.Sprintf("Sub-cause %d.1", i+1),
				Parent: key,
			})
		}
		for i, key := range effectKeys {
			tree = append(tree, domain.TreeNode{
				Key:    key + subEffectOffset,
				Name:   fmt.Sprintf("Secondary Effect %d.1", i+1),
				Parent: key,
			})
		}
	}

	if level >= 3 {
		for i, key := range causeKeys {
			tree = append(tree, domain.TreeNode{
				Key:    key + subCause2Offset,
				Name:   fmt.Sprintf("Sub-cause %d.2", i+1),
				Parent: key + subCauseOffset,
			})
		}
		for i, key := range effectKeys {
			tree = append(tree, domain.TreeNode{
				Key:    key + subEffect2Offset,
				Name:   fmt.Sprintf("Long-term Effect %d.1", i+1),
				Parent: key + subEffectOffset,
			})
		}
	}

	return tree
}
