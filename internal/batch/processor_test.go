package batch

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidebooks/tidebooks/constants"
	"github.com/tidebooks/tidebooks/gen/ent"
	"github.com/tidebooks/tidebooks/internal/entity"
	"github.com/tidebooks/tidebooks/internal/extract"
	"github.com/tidebooks/tidebooks/internal/ocr"
	"github.com/tidebooks/tidebooks/internal/repository"
)

type fakeDocuments struct {
	docs map[uuid.UUID]*ent.Document
}

func (f *fakeDocuments) GetByID(_ context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return doc, nil
}
func (f *fakeDocuments) GetByCompanyAndHash(context.Context, uuid.UUID, []byte) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDocuments) Create(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDocuments) UpsertByHash(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*ent.Document, bool, error) {
	return nil, false, errors.New("not implemented")
}

type fakeCompanies struct {
	company *ent.Company
}

func (f *fakeCompanies) GetByID(context.Context, uuid.UUID) (*ent.Company, error) {
	return f.company, nil
}
func (f *fakeCompanies) GetByName(context.Context, string) (*ent.Company, error) {
	return f.company, nil
}
func (f *fakeCompanies) CreateCompany(context.Context, *repository.Company) (*ent.Company, error) {
	return f.company, nil
}
func (f *fakeCompanies) GetOrCreateByName(context.Context, string, string) (*ent.Company, error) {
	return f.company, nil
}
func (f *fakeCompanies) ListCompanies(context.Context) ([]*ent.Company, error) {
	return []*ent.Company{f.company}, nil
}
func (f *fakeCompanies) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }

type fakeEntries struct {
	inserted []*entity.LedgerEntry
	failWith error
}

func (f *fakeEntries) Insert(_ context.Context, e *entity.LedgerEntry) (*entity.LedgerEntry, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	saved := *e
	saved.ID = uuid.New()
	f.inserted = append(f.inserted, &saved)
	return &saved, nil
}
func (f *fakeEntries) GetByID(context.Context, uuid.UUID) (*entity.LedgerEntry, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeEntries) ListByCompany(context.Context, uuid.UUID) ([]entity.LedgerEntry, error) {
	return nil, nil
}

type jobEvent struct {
	kind        string
	message     string
	needsReview bool
}

type fakeJobs struct {
	events []jobEvent
}

func (f *fakeJobs) Start(_ context.Context, documentID, companyID uuid.UUID, format string) (*ent.ExtractJob, error) {
	f.events = append(f.events, jobEvent{kind: "start"})
	return &ent.ExtractJob{ID: uuid.New(), DocumentID: documentID, CompanyID: companyID, Format: format}, nil
}
func (f *fakeJobs) FinishOCRSuccess(_ context.Context, _ uuid.UUID, _, _ string, _ float64) error {
	f.events = append(f.events, jobEvent{kind: "ocr_ok"})
	return nil
}
func (f *fakeJobs) FinishLedgered(_ context.Context, _, _ uuid.UUID, needsReview bool) error {
	f.events = append(f.events, jobEvent{kind: "ledgered", needsReview: needsReview})
	return nil
}
func (f *fakeJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.events = append(f.events, jobEvent{kind: "failed", message: message})
	return nil
}

type fakeRecognizer struct {
	result *ocr.Result
	err    error
	calls  int
}

func (f *fakeRecognizer) Process(context.Context, ocr.Input) (*ocr.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestProcessor(docs *fakeDocuments, companies *fakeCompanies, entries *fakeEntries, jobs *fakeJobs, rec *fakeRecognizer) *Processor {
	p := NewProcessor(slog.Default(), rec, docs, companies, entries, jobs)
	p.readDocument = func(*ent.Document) ([]byte, error) {
		return []byte("fake image bytes"), nil
	}
	return p
}

func testFixtures() (*fakeDocuments, *fakeCompanies, uuid.UUID) {
	companyID := uuid.New()
	docID := uuid.New()
	docs := &fakeDocuments{docs: map[uuid.UUID]*ent.Document{
		docID: {ID: docID, CompanyID: companyID, SourcePath: "/in/receipt.jpg", Filename: "receipt.jpg", FileExt: "jpg"},
	}}
	companies := &fakeCompanies{company: &ent.Company{ID: companyID, Name: "Acme"}}
	return docs, companies, docID
}

func TestProcessFileHappyPath(t *testing.T) {
	docs, companies, docID := testFixtures()
	entries := &fakeEntries{}
	jobs := &fakeJobs{}
	rec := &fakeRecognizer{result: &ocr.Result{
		Provider:        "google-vision",
		Text:            "CORNER CAFE\nTotal: $10.50",
		Confidence:      90,
		Vendor:          "CORNER CAFE",
		Date:            "12/01/2024",
		Total:           10.50,
		TotalConfidence: 95,
		LineItems: []extract.LineItem{
			{Description: "Flat White", Amount: 4.50, Confidence: 80},
		},
	}}

	p := newTestProcessor(docs, companies, entries, jobs, rec)
	out, err := p.ProcessFile(context.Background(), docID)
	require.NoError(t, err)

	assert.Equal(t, "google-vision", out.Provider)
	assert.NotEqual(t, uuid.Nil, out.JobID)
	assert.NotEqual(t, uuid.Nil, out.EntryID)

	require.Len(t, entries.inserted, 1)
	assert.Equal(t, "CORNER CAFE", entries.inserted[0].StoreName)
	assert.Equal(t, "Acme", entries.inserted[0].CompanyName)
	assert.False(t, entries.inserted[0].NeedsReview, "explicit total needs no review")

	require.Len(t, jobs.events, 3)
	assert.Equal(t, "start", jobs.events[0].kind)
	assert.Equal(t, "ocr_ok", jobs.events[1].kind)
	assert.Equal(t, "ledgered", jobs.events[2].kind)
}

func TestProcessFileFlagsLowTotalConfidence(t *testing.T) {
	docs, companies, docID := testFixtures()
	entries := &fakeEntries{}
	jobs := &fakeJobs{}
	rec := &fakeRecognizer{result: &ocr.Result{
		Provider:        "tesseract-local",
		Text:            "blurry scan 42.00",
		Confidence:      60,
		Vendor:          "Unknown Vendor",
		Total:           42.00,
		TotalConfidence: 50,
	}}

	p := newTestProcessor(docs, companies, entries, jobs, rec)
	_, err := p.ProcessFile(context.Background(), docID)
	require.NoError(t, err)

	require.Len(t, entries.inserted, 1)
	assert.True(t, entries.inserted[0].NeedsReview)
	assert.True(t, jobs.events[2].needsReview)
}

func TestProcessFileOCRFailureRecordedOnJob(t *testing.T) {
	docs, companies, docID := testFixtures()
	entries := &fakeEntries{}
	jobs := &fakeJobs{}
	rec := &fakeRecognizer{err: &ocr.ExhaustedError{MIMEType: constants.MIMEJPEG}}

	p := newTestProcessor(docs, companies, entries, jobs, rec)
	out, err := p.ProcessFile(context.Background(), docID)
	require.Error(t, err)

	assert.NotEqual(t, uuid.Nil, out.JobID, "job started before the failure")
	assert.Empty(t, entries.inserted)
	require.Len(t, jobs.events, 2)
	assert.Equal(t, "failed", jobs.events[1].kind)
	assert.NotEmpty(t, jobs.events[1].message)
}

func TestProcessFileUnsupportedFormat(t *testing.T) {
	companyID := uuid.New()
	docID := uuid.New()
	docs := &fakeDocuments{docs: map[uuid.UUID]*ent.Document{
		docID: {ID: docID, CompanyID: companyID, Filename: "notes.txt", FileExt: "txt"},
	}}
	companies := &fakeCompanies{company: &ent.Company{ID: companyID, Name: "Acme"}}
	jobs := &fakeJobs{}

	p := newTestProcessor(docs, companies, &fakeEntries{}, jobs, &fakeRecognizer{})
	_, err := p.ProcessFile(context.Background(), docID)
	require.Error(t, err)
	assert.Empty(t, jobs.events, "no job is started for unsupported formats")
}

func TestProcessBatchContinuesPastFailures(t *testing.T) {
	docs, companies, goodID := testFixtures()
	missingID := uuid.New()
	entries := &fakeEntries{}
	jobs := &fakeJobs{}
	rec := &fakeRecognizer{result: &ocr.Result{
		Provider: "google-vision", Vendor: "SHOP", Total: 5.00, TotalConfidence: 95, Confidence: 80,
	}}

	p := newTestProcessor(docs, companies, entries, jobs, rec)
	outcomes := p.ProcessBatch(context.Background(), []uuid.UUID{missingID, goodID})

	require.Len(t, outcomes, 2)
	assert.Error(t, outcomes[0].Err)
	assert.NoError(t, outcomes[1].Err)
	assert.Len(t, entries.inserted, 1)
}
