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

type firestoreItemRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRepository(client *firestore.Client) repository.ItemRepository {
	return &firestoreItemRepository{
		client: client,
	}
}

func (r *firestoreItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == "" {
		doc := r.client.Collection("items").NewDoc()
		item.ID = doc.ID
	}

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	_, err := r.client.Collection("items").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to create item", err)
	}

	return nil
}

func (r *firestoreItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	doc, err := r.client.Collection("items").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Item", err)
		}
		return nil, errors.Internal("Failed to get item", err)
	}

	var item entity.Item
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse item data", err)
	}

	return &item, nil
}

func (r *firestoreItemRepository) List(ctx context.Context, filter map[string]interface{}, search, sortMode string, limit, offset int) ([]*entity.Item, int64, error) {
	query := r.client.Collection("items").Query

	minPrice, hasMin := filter["min_price"].(float64)
	maxPrice, hasMax := filter["max_price"].(float64)

	for key, value := range filter {
		switch key {
		case "min_price", "max_price":
			// applied in memory below, alongside search
		case "city":
			query = query.Where("location.city", "==", value)
		default:
			query = query.Where(key, "==", value)
		}
	}

	// Firestore has no full-text search and restricts mixing range filters
	// with ordering, so matching, price range, sort and pagination are all
	// applied over the equality-filtered set.
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list items", err)
	}

	search = strings.ToLower(strings.TrimSpace(search))
	var items []*entity.Item
	for _, doc := range docs {
		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, 0, errors.Internal("Failed to parse item data", err)
		}

		if hasMin && item.Price < minPrice {
			continue
		}
		if hasMax && item.Price > maxPrice {
			continue
		}
		if search != "" && !matchesSearch(&item, search) {
			continue
		}

		items = append(items, &item)
	}

	sortItems(items, sortMode)
	total := int64(len(items))

	return paginateItems(items, limit, offset), total, nil
}

func matchesSearch(item *entity.Item, search string) bool {
	if strings.Contains(strings.ToLower(item.Title), search) ||
		strings.Contains(strings.ToLower(item.Description), search) ||
		strings.Contains(strings.ToLower(item.Category), search) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func sortItems(items []*entity.Item, mode string) {
	switch mode {
	case "oldest":
		sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	case "price-low":
		sort.Slice(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case "price-high":
		sort.Slice(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case "popular":
		sort.Slice(items, func(i, j int) bool { return items[i].Views > items[j].Views })
	default: // newest
		sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	}
}

func paginateItems(items []*entity.Item, limit, offset int) []*entity.Item {
	if offset >= len(items) {
		return []*entity.Item{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func (r *firestoreItemRepository) ListByOwner(ctx context.Context, ownerID, itemStatus string, limit, offset int) ([]*entity.Item, int64, error) {
	query := r.client.Collection("items").Query.Where("ownerId", "==", ownerID)
	if itemStatus != "" {
		query = query.Where("status", "==", itemStatus)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count owner items", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var items []*entity.Item

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate owner items", err)
		}

		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, 0, errors.Internal("Failed to parse item data", err)
		}
		items = append(items, &item)
	}

	return items, total, nil
}

func (r *firestoreItemRepository) CountByOwner(ctx context.Context, ownerID, itemStatus string) (int64, error) {
	query := r.client.Collection("items").Query.Where("ownerId", "==", ownerID)
	if itemStatus != "" {
		query = query.Where("status", "==", itemStatus)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count owner items", err)
	}

	return int64(len(docs)), nil
}

func (r *firestoreItemRepository) Update(ctx context.Context, item *entity.Item) error {
	item.UpdatedAt = time.Now()

	_, err := r.client.Collection("items").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to update item", err)
	}

	return nil
}

func (r *firestoreItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("items").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete item", err)
	}

	return nil
}

func (r *firestoreItemRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("items").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to increment item views", err)
	}

	return nil
}

// ToggleLike flips the user's like inside a transaction so two concurrent
// toggles cannot lose each other's update.
func (r *firestoreItemRepository) ToggleLike(ctx context.Context, id, userID string) (bool, int, error) {
	docRef := r.client.Collection("items").Doc(id)

	var liked bool
	var likeCount int

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Item", err)
			}
			return errors.Internal("Failed to get item", err)
		}

		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return errors.Internal("Failed to parse item data", err)
		}

		likes := make([]string, 0, len(item.Likes)+1)
		liked = true
		for _, uid := range item.Likes {
			if uid == userID {
				liked = false
				continue
			}
			likes = append(likes, uid)
		}
		if liked {
			likes = append(likes, userID)
		}
		likeCount = len(likes)

		return tx.Update(docRef, []firestore.Update{
			{Path: "likes", Value: likes},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		return false, 0, err
	}

	return liked, likeCount, nil
}

// UpsertInterest replaces or inserts the user's interest entry inside a
// transaction, keeping the list ordered most recent first.
func (r *firestoreItemRepository) UpsertInterest(ctx context.Context, id string, interest entity.Interest) error {
	docRef := r.client.Collection("items").Doc(id)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Item", err)
			}
			return errors.Internal("Failed to get item", err)
		}

		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return errors.Internal("Failed to parse item data", err)
		}

		interested := make([]entity.Interest, 0, len(item.InterestedUsers)+1)
		interested = append(interested, interest)
		for _, existing := range item.InterestedUsers {
			if existing.UserID == interest.UserID {
				continue
			}
			interested = append(interested, existing)
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "interestedUsers", Value: interested},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
}

func (r *firestoreItemRepository) OwnerStats(ctx context.Context, ownerID string) (*repository.OwnerItemStats, error) {
	docs, err := r.client.Collection("items").Query.Where("ownerId", "==", ownerID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to load owner items", err)
	}

	stats := &repository.OwnerItemStats{}
	categories := make(map[string]int64)

	for _, doc := range docs {
		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse item data", err)
		}

		stats.TotalItems++
		switch item.Status {
		case entity.ItemStatusAvailable:
			stats.AvailableItems++
		case entity.ItemStatusGivenAway:
			stats.GivenAwayItems++
		case entity.ItemStatusSold:
			stats.SoldItems++
		}
		stats.TotalViews += int64(item.Views)
		stats.TotalLikes += int64(len(item.Likes))
		categories[item.Category]++
	}

	for category, count := range categories {
		stats.CategoryStats = append(stats.CategoryStats, repository.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(stats.CategoryStats, func(i, j int) bool {
		if stats.CategoryStats[i].Count != stats.CategoryStats[j].Count {
			return stats.CategoryStats[i].Count > stats.CategoryStats[j].Count
		}
		return stats.CategoryStats[i].Category < stats.CategoryStats[j].Category
	})

	return stats, nil
}
