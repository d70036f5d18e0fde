package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/RigelNana/arkclinic/services/trial-service/models"
	"github.com/RigelNana/arkclinic/services/trial-service/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var errStoreDown = errors.New("store unavailable")

var epoch = time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC)

type fakeFileRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]models.UploadedFile
	seq       int
	createErr error
	failOn    map[models.FileStatus]error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{rows: map[uuid.UUID]models.UploadedFile{}, failOn: map[models.FileStatus]error{}}
}

func (r *fakeFileRepo) Create(_ context.Context, f *models.UploadedFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	_ = f.BeforeCreate(nil)
	r.seq++
	f.CreatedAt = epoch.Add(time.Duration(r.seq) * time.Second)
	f.UpdatedAt = f.CreatedAt
	r.rows[f.ID] = *f
	return nil
}

func (r *fakeFileRepo) GetByID(_ context.Context, id uuid.UUID) (*models.UploadedFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

func (r *fakeFileRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *fakeFileRepo) Transition(ctx context.Context, id uuid.UUID, from []models.FileStatus, to models.FileStatus, extra map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn[to]; err != nil {
		return err
	}
	f, ok := r.rows[id]
	if !ok {
		return repository.ErrInvalidTransition
	}
	matched := false
	for _, s := range from {
		if f.ProcessingStatus == s {
			matched = true
		}
	}
	if !matched {
		return repository.ErrInvalidTransition
	}
	f.ProcessingStatus = to
	if v, ok := extra["extracted_content"].(string); ok {
		f.ExtractedContent = &v
	}
	if v, ok := extra["error_message"].(string); ok {
		f.ErrorMessage = v
	}
	r.rows[id] = f
	return nil
}

func (r *fakeFileRepo) FindCompletedByUser(_ context.Context, userID uuid.UUID) ([]*models.UploadedFile, error) {
	return r.sorted(func(f models.UploadedFile) bool {
		return f.UserID == userID && f.ProcessingStatus == models.FileStatusCompleted
	}), nil
}

func (r *fakeFileRepo) GetByUserIDWithPagination(_ context.Context, userID uuid.UUID, _, _ int32) ([]*models.UploadedFile, int64, error) {
	files := r.sorted(func(f models.UploadedFile) bool { return f.UserID == userID })
	sort.SliceStable(files, func(i, j int) bool { return files[i].CreatedAt.After(files[j].CreatedAt) })
	return files, int64(len(files)), nil
}

// sorted returns copies in creation order.
func (r *fakeFileRepo) sorted(keep func(models.UploadedFile) bool) []*models.UploadedFile {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.UploadedFile
	for _, f := range r.rows {
		if keep(f) {
			f := f
			out = append(out, &f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// seed inserts a file directly in the given status.
func (r *fakeFileRepo) seed(owner uuid.UUID, status models.FileStatus, content string) *models.UploadedFile {
	f := &models.UploadedFile{UserID: owner, Filename: "seed.csv", ProcessingStatus: status}
	if status == models.FileStatusCompleted {
		f.ExtractedContent = &content
	}
	_ = r.Create(context.Background(), f)
	return f
}

type fakeReportRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]models.GeneratedReport
	createErr error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{rows: map[uuid.UUID]models.GeneratedReport{}}
}

func (r *fakeReportRepo) Create(_ context.Context, rep *models.GeneratedReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	_ = rep.BeforeCreate(nil)
	r.rows[rep.ID] = *rep
	return nil
}

func (r *fakeReportRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *fakeReportRepo) GetByUserIDWithPagination(_ context.Context, userID uuid.UUID, _, _ int32) ([]*models.GeneratedReport, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.GeneratedReport
	for _, rep := range r.rows {
		if rep.UserID == userID {
			rep := rep
			out = append(out, &rep)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReportRepo) GetByIDAndUser(_ context.Context, id, userID uuid.UUID) (*models.GeneratedReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.rows[id]
	if !ok || rep.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &rep, nil
}

type putCall struct {
	namespace, filename, contentType string
	size                             int
}

type fakeBlobs struct {
	mu    sync.Mutex
	calls []putCall
	err   error
}

func (b *fakeBlobs) Put(_ context.Context, namespace, filename, contentType string, data []byte) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, putCall{namespace, filename, contentType, len(data)})
	if b.err != nil {
		return "", b.err
	}
	return namespace + "/1700000000000000000-" + filename, nil
}

type inferCall struct {
	system, user string
	maxTokens    int
}

type fakeLLM struct {
	mu      sync.Mutex
	calls   []inferCall
	respond func(ctx context.Context, system, user string) (string, error)
}

func llmReturning(text string) *fakeLLM {
	return &fakeLLM{respond: func(context.Context, string, string) (string, error) { return text, nil }}
}

func llmFailing(err error) *fakeLLM {
	return &fakeLLM{respond: func(context.Context, string, string) (string, error) { return "", err }}
}

func (l *fakeLLM) Infer(ctx context.Context, system, user string, maxTokens int) (string, error) {
	l.mu.Lock()
	l.calls = append(l.calls, inferCall{system, user, maxTokens})
	l.mu.Unlock()
	return l.respond(ctx, system, user)
}

func (l *fakeLLM) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

type fakeEvents struct {
	mu      sync.Mutex
	files   []*models.UploadedFile
	reports []*models.GeneratedReport
	err     error
}

func (e *fakeEvents) PublishFileProcessed(_ context.Context, f *models.UploadedFile) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.files = append(e.files, f)
	return e.err
}

func (e *fakeEvents) PublishReportGenerated(_ context.Context, r *models.GeneratedReport) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reports = append(e.reports, r)
	return e.err
}

type harness struct {
	files   *fakeFileRepo
	reports *fakeReportRepo
	blobs   *fakeBlobs
	llm     *fakeLLM
	events  *fakeEvents
	svc     *TrialServiceImpl
}

func newHarness(llm *fakeLLM, opts ...Option) *harness {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	h := &harness{
		files:   newFakeFileRepo(),
		reports: newFakeReportRepo(),
		blobs:   &fakeBlobs{},
		llm:     llm,
		events:  &fakeEvents{},
	}
	opts = append([]Option{
		WithEventPublisher(h.events),
		WithClock(func() time.Time { return epoch }),
	}, opts...)
	h.svc = NewTrialService(h.files, h.reports, h.blobs, h.llm, logger, opts...)
	return h
}
