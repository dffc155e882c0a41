package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

// fakeRecords implements driving.Records with canned data.
type fakeRecords struct {
	services []domain.Service
	details  []domain.ServiceDetail
	cards    []domain.Card
	members  []domain.Member
	err      error

	updatedID     int
	updatedFields map[string]string
}

func (f *fakeRecords) DayServices(context.Context) ([]domain.Service, error) {
	return f.services, f.err
}

func (f *fakeRecords) UpcomingServices(context.Context) ([]domain.Service, error) {
	return f.services, f.err
}

func (f *fakeRecords) ServicesCreatedToday(context.Context) ([]domain.Service, error) {
	return f.services, f.err
}

func (f *fakeRecords) AllServiceDetails(context.Context) ([]domain.ServiceDetail, error) {
	return f.details, f.err
}

func (f *fakeRecords) ServiceDetail(_ context.Context, id int) (domain.ServiceDetail, error) {
	if f.err != nil {
		return domain.ServiceDetail{}, f.err
	}
	for _, d := range f.details {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.ServiceDetail{}, domain.E(domain.KindNotFound, "records: service detail", "not found")
}

func (f *fakeRecords) CardsTodo(context.Context) ([]domain.Card, error) {
	return f.cards, f.err
}

func (f *fakeRecords) Members(context.Context) ([]domain.Member, error) {
	return f.members, f.err
}

func (f *fakeRecords) UpdateService(_ context.Context, id int, fields map[string]string) error {
	f.updatedID = id
	f.updatedFields = fields
	return f.err
}

// fakeAuth implements driving.Auth.
type fakeAuth struct {
	authenticated bool
}

func (f *fakeAuth) IsAuthenticated(context.Context) bool { return f.authenticated }

func (f *fakeAuth) BeginAuthorization(_ context.Context, _ domain.Settings) (string, string, error) {
	return "https://login.example/authorize", "state-1", nil
}

func (f *fakeAuth) CompleteAuthorization(_ context.Context, _ domain.Settings, _ string) (domain.Credential, error) {
	return domain.Credential{AccessToken: "at", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// memSnapshots implements driven.SnapshotStore in memory.
type memSnapshots struct {
	payloads map[domain.ListType][]byte
	takenAt  map[domain.ListType]time.Time
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{
		payloads: make(map[domain.ListType][]byte),
		takenAt:  make(map[domain.ListType]time.Time),
	}
}

func (m *memSnapshots) SaveSnapshot(_ context.Context, t domain.ListType, payload []byte) error {
	m.payloads[t] = payload
	m.takenAt[t] = time.Now()
	return nil
}

func (m *memSnapshots) Snapshot(_ context.Context, t domain.ListType) ([]byte, time.Time, error) {
	payload, ok := m.payloads[t]
	if !ok {
		return nil, time.Time{}, domain.E(domain.KindNotFound, "snapshots", "no snapshot")
	}
	return payload, m.takenAt[t], nil
}

func (m *memSnapshots) SaveCredential(context.Context, domain.Credential) error { return nil }

func (m *memSnapshots) Credential(context.Context) (domain.Credential, error) {
	return domain.Credential{}, nil
}

func (m *memSnapshots) Close() error { return nil }

// setupTestServices swaps the package services for fakes and returns a
// cleanup function restoring the previous ones.
func setupTestServices(records *fakeRecords) func() {
	oldRecords := recordService
	oldAuth := authService
	oldSnapshots := snapshotStore

	recordService = records
	authService = &fakeAuth{authenticated: true}
	snapshotStore = newMemSnapshots()

	return func() {
		recordService = oldRecords
		authService = oldAuth
		snapshotStore = oldSnapshots
	}
}

// execute runs the root command with args and returns combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
