package core

import (
	"context"
	"fmt"
	"sort"

	"firebase.google.com/go/v4/auth"

	"github.com/example/fitplanner-backend/internal/cohere"
	"github.com/example/fitplanner-backend/internal/db"
	"github.com/example/fitplanner-backend/internal/models"
)

// In-memory repository fakes. Error fields, when set, are returned by the
// corresponding operation so tests can force failure paths.

type fakeGenerator struct {
	reply      string
	err        error
	lastPrompt string
	lastParams cohere.Params
	calls      int
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string, params cohere.Params) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	g.lastParams = params
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type fakeUserRepo struct {
	users     map[string]*models.User
	createErr error
	updateErr error
	deleteErr error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID string) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return db.ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, userID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.users, userID)
	return nil
}

type fakePlanRepo struct {
	plans     map[models.PlanKind][]*models.Plan
	nextID    int
	createErr error
	deleteErr error
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[models.PlanKind][]*models.Plan)}
}

// Create assigns the ID before attempting the write, like the Firestore
// repository does with NewDoc, so a failed write leaves the ID set.
func (r *fakePlanRepo) Create(_ context.Context, kind models.PlanKind, plan *models.Plan) (string, error) {
	r.nextID++
	plan.ID = fmt.Sprintf("plan-%d", r.nextID)
	if r.createErr != nil {
		return "", r.createErr
	}
	stored := *plan
	r.plans[kind] = append(r.plans[kind], &stored)
	return plan.ID, nil
}

func (r *fakePlanRepo) GetLatestByUserID(_ context.Context, kind models.PlanKind, userID string) (*models.Plan, error) {
	var latest *models.Plan
	for _, p := range r.plans[kind] {
		if p.UserID != userID {
			continue
		}
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	if latest == nil {
		return nil, db.ErrNotFound
	}
	return latest, nil
}

func (r *fakePlanRepo) DeleteByUserID(_ context.Context, kind models.PlanKind, userID string) (int, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	kept := r.plans[kind][:0]
	deleted := 0
	for _, p := range r.plans[kind] {
		if p.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	r.plans[kind] = kept
	return deleted, nil
}

type fakeProgressRepo struct {
	logs   map[string]*models.ProgressLog
	nextID int
}

func newFakeProgressRepo(logs ...*models.ProgressLog) *fakeProgressRepo {
	repo := &fakeProgressRepo{logs: make(map[string]*models.ProgressLog)}
	for _, l := range logs {
		repo.logs[l.ID] = l
	}
	return repo
}

func (r *fakeProgressRepo) Create(_ context.Context, logEntry *models.ProgressLog) (string, error) {
	r.nextID++
	logEntry.ID = fmt.Sprintf("log-%d", r.nextID)
	r.logs[logEntry.ID] = logEntry
	return logEntry.ID, nil
}

func (r *fakeProgressRepo) GetByID(_ context.Context, logID string) (*models.ProgressLog, error) {
	logEntry, ok := r.logs[logID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return logEntry, nil
}

func (r *fakeProgressRepo) GetByUserID(_ context.Context, userID string) ([]*models.ProgressLog, error) {
	var out []*models.ProgressLog
	for _, l := range r.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeProgressRepo) Update(_ context.Context, logEntry *models.ProgressLog) error {
	if _, ok := r.logs[logEntry.ID]; !ok {
		return db.ErrNotFound
	}
	r.logs[logEntry.ID] = logEntry
	return nil
}

func (r *fakeProgressRepo) Delete(_ context.Context, logID string) error {
	delete(r.logs, logID)
	return nil
}

func (r *fakeProgressRepo) DeleteByUserID(_ context.Context, userID string) (int, error) {
	deleted := 0
	for id, l := range r.logs {
		if l.UserID == userID {
			delete(r.logs, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeCalendarRepo struct {
	entries map[string]*models.CalendarEntry
	nextID  int
}

func newFakeCalendarRepo(entries ...*models.CalendarEntry) *fakeCalendarRepo {
	repo := &fakeCalendarRepo{entries: make(map[string]*models.CalendarEntry)}
	for _, e := range entries {
		repo.entries[e.ID] = e
	}
	return repo
}

func (r *fakeCalendarRepo) Create(_ context.Context, entry *models.CalendarEntry) (string, error) {
	r.nextID++
	entry.ID = fmt.Sprintf("entry-%d", r.nextID)
	r.entries[entry.ID] = entry
	return entry.ID, nil
}

func (r *fakeCalendarRepo) GetByID(_ context.Context, entryID string) (*models.CalendarEntry, error) {
	entry, ok := r.entries[entryID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return entry, nil
}

func (r *fakeCalendarRepo) GetByUserID(_ context.Context, userID string) ([]*models.CalendarEntry, error) {
	var out []*models.CalendarEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeCalendarRepo) Update(_ context.Context, entry *models.CalendarEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return db.ErrNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeCalendarRepo) Delete(_ context.Context, entryID string) error {
	delete(r.entries, entryID)
	return nil
}

func (r *fakeCalendarRepo) DeleteByUserID(_ context.Context, userID string) (int, error) {
	deleted := 0
	for id, e := range r.entries {
		if e.UserID == userID {
			delete(r.entries, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeChatRepo struct {
	msgs      map[string]*models.ChatMessage
	nextID    int
	createErr error
}

func newFakeChatRepo(msgs ...*models.ChatMessage) *fakeChatRepo {
	repo := &fakeChatRepo{msgs: make(map[string]*models.ChatMessage)}
	for _, m := range msgs {
		repo.msgs[m.ID] = m
	}
	return repo
}

func (r *fakeChatRepo) Create(_ context.Context, msg *models.ChatMessage) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	r.nextID++
	msg.ID = fmt.Sprintf("chat-%d", r.nextID)
	r.msgs[msg.ID] = msg
	return msg.ID, nil
}

func (r *fakeChatRepo) GetByID(_ context.Context, chatID string) (*models.ChatMessage, error) {
	msg, ok := r.msgs[chatID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return msg, nil
}

func (r *fakeChatRepo) GetByUserID(_ context.Context, userID string) ([]*models.ChatMessage, error) {
	var out []*models.ChatMessage
	for _, m := range r.msgs {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *fakeChatRepo) Delete(_ context.Context, chatID string) error {
	delete(r.msgs, chatID)
	return nil
}

func (r *fakeChatRepo) DeleteByUserID(_ context.Context, userID string) (int, error) {
	deleted := 0
	for id, m := range r.msgs {
		if m.UserID == userID {
			delete(r.msgs, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeAuthAccounts struct {
	uid        string
	createErr  error
	deleteErr  error
	created    int
	deletedUID string
}

func (a *fakeAuthAccounts) CreateUser(_ context.Context, _ *auth.UserToCreate) (*auth.UserRecord, error) {
	if a.createErr != nil {
		return nil, a.createErr
	}
	a.created++
	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: a.uid}}, nil
}

func (a *fakeAuthAccounts) DeleteUser(_ context.Context, uid string) error {
	if a.deleteErr != nil {
		return a.deleteErr
	}
	a.deletedUID = uid
	return nil
}
