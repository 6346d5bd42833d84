package service

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/domain"
	"github.com/study-room/studybot/internal/repository"
)

// CatalogService owns reads and writes on the files collection.
type CatalogService struct {
	files *mongo.Collection
}

func NewCatalogService(c *repository.Collections) *CatalogService {
	return &CatalogService{files: c.Files}
}

// SearchByKindAndSubject finds up to SearchResultLimit files of the given
// type whose subject contains the query, case-insensitively.
func (s *CatalogService) SearchByKindAndSubject(ctx context.Context, kind domain.FileType, subject string) ([]domain.File, error) {
	filter := bson.M{
		"type":        kind,
		"subjectName": primitive.Regex{Pattern: regexp.QuoteMeta(subject), Options: "i"},
	}
	return s.find(ctx, filter, options.Find().SetLimit(config.SearchResultLimit))
}

// branchFilter matches a branch tag against both schema generations: the
// current branches array and the legacy single branch field.
func branchFilter(code string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"branches": code},
		bson.M{"branch": code},
	}}
}

// ListByBranch finds up to BrowseResultLimit files tagged with the branch.
func (s *CatalogService) ListByBranch(ctx context.Context, code string) ([]domain.File, error) {
	return s.find(ctx, branchFilter(code), options.Find().SetLimit(config.BrowseResultLimit))
}

// buildFileFilter translates the web API's optional query parameters into a
// catalog filter. Empty parameters are not constrained.
func buildFileFilter(branch, regulation, fileType, subject string) bson.M {
	filter := bson.M{}
	if branch != "" {
		filter["$or"] = branchFilter(branch)["$or"]
	}
	if regulation != "" {
		filter["regulation"] = regulation
	}
	if fileType != "" {
		filter["type"] = fileType
	}
	if subject != "" {
		filter["subjectName"] = primitive.Regex{Pattern: regexp.QuoteMeta(subject), Options: "i"}
	}
	return filter
}

// ListFiltered serves the web API's filtered listing, newest first.
func (s *CatalogService) ListFiltered(ctx context.Context, branch, regulation, fileType, subject string) ([]domain.File, error) {
	filter := buildFileFilter(branch, regulation, fileType, subject)
	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "uploadDate", Value: -1}}))
}

func (s *CatalogService) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.File, error) {
	cur, err := s.files.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find files: %w", err)
	}
	var files []domain.File
	if err := cur.All(ctx, &files); err != nil {
		return nil, fmt.Errorf("decode files: %w", err)
	}
	return files, nil
}

// SaveFile inserts a completed upload into the catalog.
func (s *CatalogService) SaveFile(ctx context.Context, f *domain.File) error {
	if _, err := s.files.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("insert file: %w", err)
	}
	return nil
}

// RecordDownload increments the file's download counter. The matching user
// counter is a separate increment on UserService; the two are deliberately
// not atomic.
func (s *CatalogService) RecordDownload(ctx context.Context, fileID primitive.ObjectID) error {
	_, err := s.files.UpdateOne(ctx,
		bson.M{"_id": fileID},
		bson.M{"$inc": bson.M{"downloads": 1}},
	)
	if err != nil {
		return fmt.Errorf("increment downloads: %w", err)
	}
	return nil
}

func (s *CatalogService) CountFiles(ctx context.Context) (int64, error) {
	return s.files.CountDocuments(ctx, bson.M{})
}

// FileStatus is the catalog overview shown by the File Status menu entry.
type FileStatus struct {
	Total        int64
	Notes        int64
	Papers       int64
	Recent       []domain.File
	TopDownloads []domain.File
}

func (s *CatalogService) FileStatus(ctx context.Context) (*FileStatus, error) {
	status := &FileStatus{}

	var err error
	if status.Total, err = s.files.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count files: %w", err)
	}
	if status.Notes, err = s.files.CountDocuments(ctx, bson.M{"type": domain.FileTypeNotes}); err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}
	if status.Papers, err = s.files.CountDocuments(ctx, bson.M{"type": domain.FileTypePaper}); err != nil {
		return nil, fmt.Errorf("count papers: %w", err)
	}

	if status.Recent, err = s.find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "uploadDate", Value: -1}}).SetLimit(config.RecentFilesLimit)); err != nil {
		return nil, err
	}
	if status.TopDownloads, err = s.find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "downloads", Value: -1}}).SetLimit(config.TopDownloadsLimit)); err != nil {
		return nil, err
	}

	return status, nil
}

// BranchCounts aggregates files per branch tag, folding legacy single-branch
// records into the same buckets, most-tagged first.
func (s *CatalogService) BranchCounts(ctx context.Context) ([]domain.BranchCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{
			"allBranches": bson.M{"$cond": bson.M{
				"if":   bson.M{"$isArray": "$branches"},
				"then": "$branches",
				"else": bson.M{"$cond": bson.M{"if": "$branch", "then": bson.A{"$branch"}, "else": bson.A{}}},
			}},
		}}},
		{{Key: "$unwind", Value: "$allBranches"}},
		{{Key: "$group", Value: bson.M{"_id": "$allBranches", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cur, err := s.files.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate branch counts: %w", err)
	}
	var counts []domain.BranchCount
	if err := cur.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode branch counts: %w", err)
	}
	return counts, nil
}

// TotalDownloads sums the download counters across the whole catalog.
func (s *CatalogService) TotalDownloads(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$downloads"}}}},
	}
	cur, err := s.files.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate downloads: %w", err)
	}
	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode downloads: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// MigrateLegacyBranches rewrites records still on the single-branch schema to
// carry an equivalent branches array. Running it again matches nothing, so
// the operation is idempotent.
func (s *CatalogService) MigrateLegacyBranches(ctx context.Context) (int64, error) {
	filter := bson.M{
		"branch":   bson.M{"$exists": true},
		"branches": bson.M{"$exists": false},
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{"branches": bson.A{"$branch"}}}},
	}
	res, err := s.files.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("migrate branches: %w", err)
	}
	return res.ModifiedCount, nil
}
