package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
	"github.com/Praveenramisetti76/ShareSphere/internal/domain/repository"
	"github.com/Praveenramisetti76/ShareSphere/pkg/errors"
)

// In-memory repository fakes mirroring the Firestore adapters' semantics.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return f.Create(ctx, user)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, excludeID string) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []*entity.User
	for _, user := range f.users {
		if user.ID == excludeID {
			continue
		}
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].FirstName < users[j].FirstName })
	return users, nil
}

func (f *fakeUserRepo) Search(ctx context.Context, query, city string, limit, offset int) ([]*entity.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	query = strings.ToLower(query)
	var users []*entity.User
	for _, user := range f.users {
		if city != "" && user.Location.City != city {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(user.Username), query) {
			continue
		}
		copied := *user
		users = append(users, &copied)
	}
	return users, int64(len(users)), nil
}

func (f *fakeUserRepo) AddRating(ctx context.Context, id string, rating float64) (*entity.UserRating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	count := user.Rating.Count + 1
	average := (user.Rating.Average*float64(user.Rating.Count) + rating) / float64(count)
	user.Rating = entity.UserRating{Average: average, Count: count}
	return &user.Rating, nil
}

type fakeItemRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Item
	seq   int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (f *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID == "" {
		f.seq++
		item.ID = fmt.Sprintf("item-%d", f.seq)
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, errors.NotFound("Item", nil)
	}
	copied := *item
	return &copied, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) List(ctx context.Context, filter map[string]interface{}, search, sortMode string, limit, offset int) ([]*entity.Item, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []*entity.Item
	for _, item := range f.items {
		if status, ok := filter["status"].(string); ok && item.Status != status {
			continue
		}
		if category, ok := filter["category"].(string); ok && item.Category != category {
			continue
		}
		copied := *item
		items = append(items, &copied)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, int64(len(items)), nil
}

func (f *fakeItemRepo) ListByOwner(ctx context.Context, ownerID, status string, limit, offset int) ([]*entity.Item, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []*entity.Item
	for _, item := range f.items {
		if item.OwnerID != ownerID {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		copied := *item
		items = append(items, &copied)
	}
	return items, int64(len(items)), nil
}

func (f *fakeItemRepo) CountByOwner(ctx context.Context, ownerID, status string) (int64, error) {
	_, total, err := f.ListByOwner(ctx, ownerID, status, 0, 0)
	return total, err
}

func (f *fakeItemRepo) IncrementViews(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return errors.NotFound("Item", nil)
	}
	item.Views++
	return nil
}

func (f *fakeItemRepo) ToggleLike(ctx context.Context, id, userID string) (bool, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return false, 0, errors.NotFound("Item", nil)
	}
	likes := make([]string, 0, len(item.Likes)+1)
	liked := true
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
	item.Likes = likes
	return liked, len(likes), nil
}

func (f *fakeItemRepo) UpsertInterest(ctx context.Context, id string, interest entity.Interest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return errors.NotFound("Item", nil)
	}
	interested := make([]entity.Interest, 0, len(item.InterestedUsers)+1)
	interested = append(interested, interest)
	for _, existing := range item.InterestedUsers {
		if existing.UserID == interest.UserID {
			continue
		}
		interested = append(interested, existing)
	}
	item.InterestedUsers = interested
	return nil
}

func (f *fakeItemRepo) OwnerStats(ctx context.Context, ownerID string) (*repository.OwnerItemStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &repository.OwnerItemStats{}
	for _, item := range f.items {
		if item.OwnerID != ownerID {
			continue
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
	}
	return stats, nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.Request
	seq      int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*entity.Request)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *entity.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if request.ID == "" {
		f.seq++
		request.ID = fmt.Sprintf("request-%d", f.seq)
	}
	copied := *request
	f.requests[request.ID] = &copied
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRequestRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var requests []*entity.Request
	for _, request := range f.requests {
		if request.OwnerID == ownerID {
			copied := *request
			requests = append(requests, &copied)
		}
	}
	return requests, nil
}

func (f *fakeRequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]*entity.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var requests []*entity.Request
	for _, request := range f.requests {
		if request.RequesterID == requesterID {
			copied := *request
			requests = append(requests, &copied)
		}
	}
	return requests, nil
}

func (f *fakeRequestRepo) FindActive(ctx context.Context, requesterID, itemID string) (*entity.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, request := range f.requests {
		if request.RequesterID == requesterID && request.ItemID == itemID && request.IsActive() {
			copied := *request
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRequestRepo) Respond(ctx context.Context, id, newStatus, responseMessage string) (*entity.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	if !request.CanTransitionTo(newStatus) {
		return nil, errors.Conflict("Request status cannot change from " + request.Status + " to " + newStatus)
	}
	now := time.Now()
	request.Status = newStatus
	request.ResponseMessage = responseMessage
	if request.RespondedAt == nil {
		request.RespondedAt = &now
	}
	request.UpdatedAt = now
	copied := *request
	return &copied, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[string]*entity.Message
	seq      int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string]*entity.Message)}
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if message.ID == "" {
		f.seq++
		message.ID = fmt.Sprintf("message-%d", f.seq)
	}
	copied := *message
	f.messages[message.ID] = &copied
	return nil
}

func (f *fakeMessageRepo) GetByID(ctx context.Context, id string) (*entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	message, ok := f.messages[id]
	if !ok {
		return nil, errors.NotFound("Message", nil)
	}
	copied := *message
	return &copied, nil
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.messages, id)
	return nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, id string, readAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	message, ok := f.messages[id]
	if !ok {
		return errors.NotFound("Message", nil)
	}
	message.IsRead = true
	message.ReadAt = &readAt
	return nil
}

func (f *fakeMessageRepo) ListThread(ctx context.Context, userID, counterpartID, itemID string, limit, offset int) ([]*entity.Message, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var messages []*entity.Message
	for _, message := range f.messages {
		if message.ItemID != itemID {
			continue
		}
		pair := (message.SenderID == userID && message.ReceiverID == counterpartID) ||
			(message.SenderID == counterpartID && message.ReceiverID == userID)
		if !pair {
			continue
		}
		copied := *message
		messages = append(messages, &copied)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].CreatedAt.Before(messages[j].CreatedAt) })
	return messages, int64(len(messages)), nil
}

func (f *fakeMessageRepo) MarkThreadRead(ctx context.Context, itemID, senderID, receiverID string, readAt time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	updated := 0
	for _, message := range f.messages {
		if message.ItemID != itemID || message.SenderID != senderID || message.ReceiverID != receiverID {
			continue
		}
		if message.IsRead {
			continue
		}
		message.IsRead = true
		message.ReadAt = &readAt
		updated++
	}
	return updated, nil
}

func (f *fakeMessageRepo) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	buckets := make(map[string]*entity.Conversation)
	for _, message := range f.messages {
		if message.SenderID != userID && message.ReceiverID != userID {
			continue
		}
		counterpart := message.Counterpart(userID)
		bucket, ok := buckets[counterpart]
		if !ok {
			bucket = &entity.Conversation{CounterpartID: counterpart}
			buckets[counterpart] = bucket
		}
		copied := *message
		if bucket.LastMessage == nil || copied.CreatedAt.After(bucket.LastMessage.CreatedAt) {
			bucket.LastMessage = &copied
		}
		if message.ReceiverID == userID && !message.IsRead {
			bucket.UnreadCount++
		}
	}
	var conversations []*entity.Conversation
	for _, bucket := range buckets {
		conversations = append(conversations, bucket)
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.CreatedAt.After(conversations[j].LastMessage.CreatedAt)
	})
	return conversations, int64(len(conversations)), nil
}

func (f *fakeMessageRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, message := range f.messages {
		if message.ReceiverID == userID && !message.IsRead {
			count++
		}
	}
	return count, nil
}
