package domain

// BranchCount is one row of the per-branch file aggregation. Records from the
// legacy single-branch schema are folded in by the aggregation pipeline.
type BranchCount struct {
	Branch string `bson:"_id" json:"branchCode"`
	Count  int64  `bson:"count" json:"count"`
}
