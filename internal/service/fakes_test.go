package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cfm-kit/complaint-service/internal/domain"
	"github.com/cfm-kit/complaint-service/internal/events"
	"github.com/cfm-kit/complaint-service/internal/repository"
)

// uniqueViolation mimics the error pgx surfaces when a unique constraint
// fires.
func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

type fakeAssignmentRepo struct {
	byComplaint map[int64]*domain.Assignment
	dashboards  map[int64][]domain.AssignedComplaint
	details     map[int64]map[int64]*domain.ComplaintRecord
	createErr   error
	nextID      int64
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{
		byComplaint: make(map[int64]*domain.Assignment),
		dashboards:  make(map[int64][]domain.AssignedComplaint),
		details:     make(map[int64]map[int64]*domain.ComplaintRecord),
	}
}

func (f *fakeAssignmentRepo) Create(_ context.Context, assignment *domain.Assignment) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byComplaint[assignment.ComplaintID]; exists {
		return uniqueViolation()
	}
	f.nextID++
	assignment.ID = f.nextID
	f.byComplaint[assignment.ComplaintID] = assignment
	return nil
}

func (f *fakeAssignmentRepo) GetByComplaint(_ context.Context, complaintID int64) (*domain.Assignment, error) {
	if a, ok := f.byComplaint[complaintID]; ok {
		return a, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAssignmentRepo) GetByComplaintAndUser(_ context.Context, complaintID, userID int64) (*domain.Assignment, error) {
	if a, ok := f.byComplaint[complaintID]; ok && a.UserID == userID {
		return a, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAssignmentRepo) ListForUser(_ context.Context, userID int64) ([]domain.AssignedComplaint, error) {
	return f.dashboards[userID], nil
}

func (f *fakeAssignmentRepo) GetDetailForUser(_ context.Context, complaintID, userID int64) (*domain.ComplaintRecord, error) {
	if byUser, ok := f.details[complaintID]; ok {
		if record, ok := byUser[userID]; ok {
			return record, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeComplaintRepo struct {
	complaints   map[int64]*domain.Complaint
	attachments  map[int64]*domain.Attachment
	statuses     map[string]*domain.PublicStatus
	records      map[int64]*domain.ComplaintRecord
	createErr    error
	nextID       int64
	lastFilter   repository.ComplaintFilter
	filterReturn []domain.ComplaintRecord
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{
		complaints:  make(map[int64]*domain.Complaint),
		attachments: make(map[int64]*domain.Attachment),
		statuses:    make(map[string]*domain.PublicStatus),
		records:     make(map[int64]*domain.ComplaintRecord),
	}
}

func (f *fakeComplaintRepo) CreateWithAttachment(_ context.Context, complaint *domain.Complaint, attachment *domain.Attachment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	complaint.ID = f.nextID
	f.complaints[complaint.ID] = complaint
	if attachment != nil {
		attachment.ComplaintID = complaint.ID
		f.attachments[complaint.ID] = attachment
	}
	return nil
}

func (f *fakeComplaintRepo) GetByID(_ context.Context, id int64) (*domain.Complaint, error) {
	if c, ok := f.complaints[id]; ok {
		return c, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeComplaintRepo) GetRecord(_ context.Context, id int64) (*domain.ComplaintRecord, error) {
	if r, ok := f.records[id]; ok {
		return r, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeComplaintRepo) ListRecords(_ context.Context, filter repository.ComplaintFilter) ([]domain.ComplaintRecord, error) {
	f.lastFilter = filter
	return f.filterReturn, nil
}

func (f *fakeComplaintRepo) GetPublicStatus(_ context.Context, trackingID string) (*domain.PublicStatus, error) {
	if s, ok := f.statuses[trackingID]; ok {
		return s, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeLookupRepo struct {
	categories map[int64]*domain.Category
	channels   []domain.Lookup
	projects   []domain.Project
}

func newFakeLookupRepo() *fakeLookupRepo {
	return &fakeLookupRepo{categories: make(map[int64]*domain.Category)}
}

func (f *fakeLookupRepo) Genders(context.Context) ([]domain.Lookup, error)      { return nil, nil }
func (f *fakeLookupRepo) Channels(context.Context) ([]domain.Lookup, error)     { return f.channels, nil }
func (f *fakeLookupRepo) Governorates(context.Context) ([]domain.Lookup, error) { return nil, nil }
func (f *fakeLookupRepo) DistrictsByGovernorate(context.Context, int64) ([]domain.Lookup, error) {
	return nil, nil
}
func (f *fakeLookupRepo) SubDistrictsByDistrict(context.Context, int64) ([]domain.Lookup, error) {
	return nil, nil
}
func (f *fakeLookupRepo) CommunitiesBySubDistrict(context.Context, int64) ([]domain.Lookup, error) {
	return nil, nil
}
func (f *fakeLookupRepo) Projects(context.Context) ([]domain.Project, error) { return f.projects, nil }

func (f *fakeLookupRepo) Categories(context.Context) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeLookupRepo) GetCategory(_ context.Context, id int64) (*domain.Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeUserRepo struct {
	byID      map[int64]*domain.User
	createErr error
	updateErr error
	nextID    int64

	profileID      int64
	profileName    string
	profileEmail   string
	profileNewHash *string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) add(user *domain.User) *domain.User {
	f.nextID++
	user.ID = f.nextID
	f.byID[user.ID] = user
	return user
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == user.Email {
			return uniqueViolation()
		}
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id int64, username, email string, newPasswordHash *string) error {
	user, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	f.profileID = id
	f.profileName = username
	f.profileEmail = email
	f.profileNewHash = newPasswordHash
	user.Username = username
	user.Email = email
	if newPasswordHash != nil {
		user.PasswordHash = *newPasswordHash
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) ListAssignable(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.byID {
		if u.Role == domain.RoleStaff || u.Role == domain.RoleManager {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeResponseRepo struct {
	byKey       map[[2]int64]*domain.Response
	assignments *fakeAssignmentRepo
	createErr   error
	nextID      int64
}

func newFakeResponseRepo(assignments *fakeAssignmentRepo) *fakeResponseRepo {
	return &fakeResponseRepo{byKey: make(map[[2]int64]*domain.Response), assignments: assignments}
}

func (f *fakeResponseRepo) CreateAndResolve(_ context.Context, response *domain.Response) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := [2]int64{response.ComplaintID, response.UserID}
	if _, exists := f.byKey[key]; exists {
		return uniqueViolation()
	}
	f.nextID++
	response.ID = f.nextID
	f.byKey[key] = response
	if f.assignments != nil {
		if a, ok := f.assignments.byComplaint[response.ComplaintID]; ok && a.UserID == response.UserID {
			a.Status = domain.AssignmentStatusResolved
		}
	}
	return nil
}

func (f *fakeResponseRepo) GetByComplaintAndUser(_ context.Context, complaintID, userID int64) (*domain.Response, error) {
	if r, ok := f.byKey[[2]int64{complaintID, userID}]; ok {
		return r, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeNotificationRepo struct {
	mu      sync.Mutex
	rows    []*domain.Notification
	markErr error
	nextID  int64
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *domain.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	notification.ID = f.nextID
	f.rows = append(f.rows, notification)
	return nil
}

func (f *fakeNotificationRepo) ListRecent(_ context.Context, userID int64) ([]domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Notification
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, *f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, userID int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.ID == id && row.UserID == userID {
			row.IsRead = true
			return nil
		}
	}
	return pgx.ErrNoRows
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
