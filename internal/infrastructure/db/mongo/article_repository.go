package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

const collectionArticles = "articles"

type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection(collectionArticles)}
}

type articleDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Author    string             `bson:"author"`
	Category  string             `bson:"category"`
	ImageURL  *string            `bson:"image_url"`
	Status    string             `bson:"status"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (d articleDocument) toDomain() *domain.Article {
	return &domain.Article{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		Author:    d.Author,
		Category:  d.Category,
		ImageURL:  d.ImageURL,
		Status:    domain.ArticleStatus(d.Status),
		Timestamp: d.Timestamp.UTC(),
	}
}

func parseArticleID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidArticleID
	}
	return oid, nil
}

// Create inserts a new article document and returns it with the generated ID.
func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := articleDocument{
		ID:        primitive.NewObjectID(),
		Title:     a.Title,
		Content:   a.Content,
		Author:    a.Author,
		Category:  a.Category,
		ImageURL:  a.ImageURL,
		Status:    string(a.Status),
		// BSON dates hold milliseconds; match what a later read returns.
		Timestamp: a.Timestamp.UTC().Truncate(time.Millisecond),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	oid, err := parseArticleID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc articleDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return doc.toDomain(), nil
}

// ListByStatus returns every article with the given status, newest first.
func (r *ArticleRepository) ListByStatus(ctx context.Context, status domain.ArticleStatus) ([]*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"status": string(status)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cur.Close(ctx)

	var docs []articleDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	out := make([]*domain.Article, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Approve sets status to approved in a single atomic update and returns the
// document as it is after the update.
func (r *ArticleRepository) Approve(ctx context.Context, id string) (*domain.Article, error) {
	oid, err := parseArticleID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": string(domain.StatusApproved)}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc articleDocument
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("approve article: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ArticleRepository) CountApprovedByAuthor(ctx context.Context, author string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{
		"author": author,
		"status": string(domain.StatusApproved),
	})
	if err != nil {
		return 0, fmt.Errorf("count approved articles: %w", err)
	}
	return n, nil
}

// AggregateApprovedByAuthor groups approved articles per author, ordered by author.
func (r *ArticleRepository) AggregateApprovedByAuthor(ctx context.Context) ([]domain.AuthorCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": string(domain.StatusApproved)}}},
		{{Key: "$group", Value: bson.M{"_id": "$author", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate approved articles: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Author string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode aggregate: %w", err)
	}

	out := make([]domain.AuthorCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AuthorCount{Author: row.Author, Count: row.Count})
	}
	return out, nil
}

// EnsureIndexes creates the indexes backing the listing and earnings queries.
func (r *ArticleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "author", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
