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

	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

const commentsCollection = "comments"

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type commentDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Content       string               `bson:"content"`
	Post          primitive.ObjectID   `bson:"post"`
	Author        primitive.ObjectID   `bson:"author"`
	ParentComment *primitive.ObjectID  `bson:"parent_comment"`
	Likes         []primitive.ObjectID `bson:"likes"`
	IsApproved    bool                 `bson:"is_approved"`
	IsEdited      bool                 `bson:"is_edited"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

func (d *commentDoc) toDomain() *domain.Comment {
	likes := make([]string, 0, len(d.Likes))
	for _, id := range d.Likes {
		likes = append(likes, id.Hex())
	}
	parent := ""
	if d.ParentComment != nil {
		parent = d.ParentComment.Hex()
	}
	return &domain.Comment{
		ID:         d.ID.Hex(),
		Content:    d.Content,
		PostID:     d.Post.Hex(),
		AuthorID:   d.Author.Hex(),
		ParentID:   parent,
		Likes:      likes,
		IsApproved: d.IsApproved,
		IsEdited:   d.IsEdited,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func commentID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	post, err := primitive.ObjectIDFromHex(c.PostID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	author, err := primitive.ObjectIDFromHex(c.AuthorID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	var parent *primitive.ObjectID
	if c.ParentID != "" {
		oid, err := primitive.ObjectIDFromHex(c.ParentID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		parent = &oid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := commentDoc{
		Content:       c.Content,
		Post:          post,
		Author:        author,
		ParentComment: parent,
		Likes:         []primitive.ObjectID{},
		IsApproved:    c.IsApproved,
		IsEdited:      c.IsEdited,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := commentID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc commentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns a page of approved comments for a post, newest first, and the
// total match count.
func (r *CommentRepository) List(ctx context.Context, filter ports.ListCommentsFilter) ([]*domain.Comment, int64, error) {
	post, err := postID(filter.PostID)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"post": post, "is_approved": true}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	comments := make([]*domain.Comment, 0, filter.Limit)
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, doc.toDomain())
	}
	return comments, total, cur.Err()
}

// UpdateContent replaces the body and marks the comment edited. is_edited is
// set on every successful update, not only when the content changed.
func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) error {
	oid, err := commentID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"content":    content,
		"is_edited":  true,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := commentID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// DeleteByPost removes every comment referencing the post, replies included.
func (r *CommentRepository) DeleteByPost(ctx context.Context, pID string) (int64, error) {
	oid, err := postID(pID)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"post": oid})
	if err != nil {
		return 0, fmt.Errorf("delete post comments: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteReplies removes the direct replies of a comment. The cascade stops
// there; grandchild replies keep their dangling parent reference.
func (r *CommentRepository) DeleteReplies(ctx context.Context, parentID string) (int64, error) {
	oid, err := commentID(parentID)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"parent_comment": oid})
	if err != nil {
		return 0, fmt.Errorf("delete replies: %w", err)
	}
	return res.DeletedCount, nil
}

// SetLike adds or removes userID from the like-set and returns the saved
// like count, read back from the updated document.
func (r *CommentRepository) SetLike(ctx context.Context, id, userID string, liked bool) (int, error) {
	oid, err := commentID(id)
	if err != nil {
		return 0, err
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"likes": uid}}
	if !liked {
		update = bson.M{"$pull": bson.M{"likes": uid}}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc commentDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrCommentNotFound
		}
		return 0, fmt.Errorf("toggle comment like: %w", err)
	}
	return len(doc.Likes), nil
}

func (r *CommentRepository) Approve(ctx context.Context, id string) error {
	oid, err := commentID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"is_approved": true,
		"updated_at":  time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("approve comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// EnsureIndexes creates the listing and cascade lookup indexes.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "post", Value: 1}}},
		{Keys: bson.D{{Key: "parent_comment", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
