package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencourses/courses-api/internal/core/domain"
)

const courseCollection = "courses"

// MongoCourseRepository persists courses and resolves their owners from the
// users collection so read projections carry the owner's public fields.
type MongoCourseRepository struct {
	courses *mongo.Collection
	users   *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *MongoCourseRepository {
	return &MongoCourseRepository{
		courses: db.Collection(courseCollection),
		users:   db.Collection(userCollection),
	}
}

type mongoCourse struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	EstimatedTime   string             `bson:"estimated_time,omitempty"`
	MaterialsNeeded string             `bson:"materials_needed,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id"`
	CreatedAt       int64              `bson:"created_at"`
	UpdatedAt       int64              `bson:"updated_at"`
}

func (r *MongoCourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	ownerID, err := primitive.ObjectIDFromHex(course.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id %q: %w", course.UserID, err)
	}

	doc := mongoCourse{
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		UserID:          ownerID,
		CreatedAt:       course.CreatedAt.Unix(),
		UpdatedAt:       course.UpdatedAt.Unix(),
	}

	res, err := r.courses.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	created := *course
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	var mc mongoCourse
	if err := r.courses.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	course := mc.toDomain()
	owners, err := r.loadOwners(ctx, []primitive.ObjectID{mc.UserID})
	if err != nil {
		return nil, err
	}
	course.Owner = owners[mc.UserID]
	return course, nil
}

func (r *MongoCourseRepository) FindAll(ctx context.Context) ([]*domain.Course, error) {
	cur, err := r.courses.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoCourse
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}

	ownerIDs := make([]primitive.ObjectID, 0, len(docs))
	seen := make(map[primitive.ObjectID]struct{}, len(docs))
	for _, mc := range docs {
		if _, ok := seen[mc.UserID]; !ok {
			seen[mc.UserID] = struct{}{}
			ownerIDs = append(ownerIDs, mc.UserID)
		}
	}

	owners, err := r.loadOwners(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Course, 0, len(docs))
	for _, mc := range docs {
		course := mc.toDomain()
		course.Owner = owners[mc.UserID]
		out = append(out, course)
	}
	return out, nil
}

func (r *MongoCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	oid, err := primitive.ObjectIDFromHex(course.ID)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	res, err := r.courses.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"title":            course.Title,
		"description":      course.Description,
		"estimated_time":   course.EstimatedTime,
		"materials_needed": course.MaterialsNeeded,
		"updated_at":       course.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *MongoCourseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	res, err := r.courses.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// loadOwners fetches the public fields of the given users in one query.
// The credential hash is deliberately left out of the projection.
func (r *MongoCourseRepository) loadOwners(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*domain.User, error) {
	out := make(map[primitive.ObjectID]*domain.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("load course owners: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode course owners: %w", err)
	}

	for _, mu := range docs {
		out[mu.ID] = &domain.User{
			ID:           mu.ID.Hex(),
			FirstName:    mu.FirstName,
			LastName:     mu.LastName,
			EmailAddress: mu.EmailAddress,
		}
	}
	return out, nil
}

func (mc mongoCourse) toDomain() *domain.Course {
	return &domain.Course{
		ID:              mc.ID.Hex(),
		Title:           mc.Title,
		Description:     mc.Description,
		EstimatedTime:   mc.EstimatedTime,
		MaterialsNeeded: mc.MaterialsNeeded,
		UserID:          mc.UserID.Hex(),
		CreatedAt:       unixToTime(mc.CreatedAt),
		UpdatedAt:       unixToTime(mc.UpdatedAt),
	}
}
