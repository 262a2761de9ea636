package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/domain/repository"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}

	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := r.client.Collection("users").Query.
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to look up user by email", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}

	return nil
}

func (r *firestoreUserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("users").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete user", err)
	}

	return nil
}

func (r *firestoreUserRepository) List(ctx context.Context, excludeID string) ([]*entity.User, error) {
	iter := r.client.Collection("users").Query.
		OrderBy("firstName", firestore.Asc).
		Documents(ctx)

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate users", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errors.Internal("Failed to parse user data", err)
		}
		if user.ID == excludeID {
			continue
		}
		users = append(users, &user)
	}

	return users, nil
}

// Search matches the query against username and name fields in memory;
// Firestore only supports prefix matching natively. City is an equality
// filter pushed down to the query.
func (r *firestoreUserRepository) Search(ctx context.Context, query, city string, limit, offset int) ([]*entity.User, int64, error) {
	q := r.client.Collection("users").Query
	if city != "" {
		q = q.Where("location.city", "==", city)
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to search users", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	var users []*entity.User
	for _, doc := range docs {
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, 0, errors.Internal("Failed to parse user data", err)
		}

		if query != "" && !matchesUserQuery(&user, query) {
			continue
		}
		users = append(users, &user)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].Rating.Average != users[j].Rating.Average {
			return users[i].Rating.Average > users[j].Rating.Average
		}
		return users[i].Username < users[j].Username
	})

	total := int64(len(users))

	if offset >= len(users) {
		return []*entity.User{}, total, nil
	}
	end := len(users)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return users[offset:end], total, nil
}

func matchesUserQuery(user *entity.User, query string) bool {
	return strings.Contains(strings.ToLower(user.Username), query) ||
		strings.Contains(strings.ToLower(user.FirstName), query) ||
		strings.Contains(strings.ToLower(user.LastName), query)
}

// AddRating recomputes the running average inside a transaction so two
// concurrent ratings both count.
func (r *firestoreUserRepository) AddRating(ctx context.Context, id string, rating float64) (*entity.UserRating, error) {
	docRef := r.client.Collection("users").Doc(id)

	var updated entity.UserRating

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("User", err)
			}
			return errors.Internal("Failed to get user", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return errors.Internal("Failed to parse user data", err)
		}

		count := user.Rating.Count + 1
		average := (user.Rating.Average*float64(user.Rating.Count) + rating) / float64(count)

		updated = entity.UserRating{Average: average, Count: count}

		return tx.Update(docRef, []firestore.Update{
			{Path: "rating", Value: updated},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
