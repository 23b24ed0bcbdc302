// Package policy evaluates outdated dependencies against a merged policy.
//
// For each dependency the evaluator classifies the upgrade tier, picks the
// first package rule whose pattern matches "<group>:<name>", honours an active
// suppression, and otherwise applies the tier's rule to decide between a
// warning and a violation.
//
//	report, errs := policy.NewEvaluator().EvaluateBatch(outdated, current, merged)
//	for _, dep := range report.Violations() {
//	    fmt.Println(dep.ID())
//	}
//
// Failures for one dependency (malformed versions, unusable suppression dates)
// are returned as *errors.ItemError values and never stop the batch.
package policy
