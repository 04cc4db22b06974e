package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rizkypratama/user-crud-api/internal/domain/entity"
	"github.com/rizkypratama/user-crud-api/internal/domain/repository"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database, collection string) *UserRepository {
	return &UserRepository{col: db.Collection(collection)}
}

// userDoc is the collection-side shape of a user. The entity keeps the id as
// a hex string; only this package knows about ObjectIDs.
type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Phone    string             `bson:"phone"`
}

func (d userDoc) toEntity() entity.User {
	return entity.User{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Email:    d.Email,
		Password: d.Password,
		Phone:    d.Phone,
	}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("malformed user id %q: %w", id, err)
	}
	return oid, nil
}

// setFields builds the $set document for a partial update. Nil pointers are
// skipped so unspecified fields keep their stored values.
func setFields(fields repository.UserFields) bson.M {
	set := bson.M{}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Email != nil {
		set["email"] = *fields.Email
	}
	if fields.Password != nil {
		set["password"] = *fields.Password
	}
	if fields.Phone != nil {
		set["phone"] = *fields.Phone
	}
	return set
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	res, err := r.col.InsertOne(ctx, userDoc{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Phone:    u.Phone,
	})
	if err != nil {
		return err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	u.ID = oid.Hex()
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	users := make([]entity.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toEntity())
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var d userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u := d.toEntity()
	return &u, nil
}

func (r *UserRepository) UpdateByID(ctx context.Context, id string, fields repository.UserFields) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	set := setFields(fields)
	if len(set) == 0 {
		// An empty $set is rejected by the server; an update with no fields
		// just returns the document unchanged.
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d userDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u := d.toEntity()
	return &u, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var d userDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u := d.toEntity()
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
