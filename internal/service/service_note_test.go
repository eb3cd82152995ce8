// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Golem-Base/dPaste/internal/adapter"
	"github.com/Golem-Base/dPaste/internal/config"
	"github.com/Golem-Base/dPaste/internal/logger"
	"github.com/Golem-Base/dPaste/internal/mock"
	"github.com/Golem-Base/dPaste/internal/service"
	"github.com/Golem-Base/dPaste/models"
)

func testAppConfig() config.App {
	return config.App{
		MaxNoteSize:       1024,
		DefaultTTL:        24 * time.Hour,
		EncryptionEnabled: true,
	}
}

func testChainConfig() config.Chain {
	return config.Chain{
		RPCURL:        "http://localhost:8545",
		BlockInterval: 2 * time.Second,
	}
}

type noteServiceMocks struct {
	box     *mock.MockBox
	storage *mock.MockStorageAdapter
	wallet  *mock.MockWalletAdapter
	ledger  *mock.MockLedgerService
}

func newTestNoteService(t *testing.T, appCfg config.App) (service.NoteService, noteServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := noteServiceMocks{
		box:     mock.NewMockBox(ctrl),
		storage: mock.NewMockStorageAdapter(ctrl),
		wallet:  mock.NewMockWalletAdapter(ctrl),
		ledger:  mock.NewMockLedgerService(ctrl),
	}
	svc := service.NewNoteService(appCfg, testChainConfig(), m.box, m.storage, m.wallet, m.ledger, logger.Nop())
	return svc, m
}

func TestNoteServiceCreatePlaintext(t *testing.T) {
	svc, _ := newTestNoteService(t, testAppConfig())

	draft, err := svc.Create(service.CreateNoteParams{Text: "hello", TTL: 86400 * time.Second, Language: "go"})
	require.NoError(t, err)

	text, ok := draft.Payload.(models.PlaintextPayload)
	require.True(t, ok)
	assert.Equal(t, "hello", text.Text)
	assert.Equal(t, "go", draft.Metadata.Language)
	assert.False(t, draft.Metadata.Encrypted)
	// 86400s at a 2s block interval
	assert.Equal(t, uint64(43200), draft.Metadata.TTLBlocks)
	assert.NotZero(t, draft.Metadata.CreatedAt)
}

func TestNoteServiceCreateDefaults(t *testing.T) {
	svc, _ := newTestNoteService(t, testAppConfig())

	draft, err := svc.Create(service.CreateNoteParams{Text: "hi"})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultLanguage, draft.Metadata.Language)
	// default TTL of 24h at a 2s interval
	assert.Equal(t, uint64(43200), draft.Metadata.TTLBlocks)
}

func TestNoteServiceCreateEmpty(t *testing.T) {
	svc, _ := newTestNoteService(t, testAppConfig())

	_, err := svc.Create(service.CreateNoteParams{Text: ""})
	assert.ErrorIs(t, err, service.ErrEmptyNote)
}

func TestNoteServiceCreateSizeLimit(t *testing.T) {
	cfg := testAppConfig()
	svc, _ := newTestNoteService(t, cfg)

	atLimit := strings.Repeat("a", cfg.MaxNoteSize)
	_, err := svc.Create(service.CreateNoteParams{Text: atLimit})
	assert.NoError(t, err)

	_, err = svc.Create(service.CreateNoteParams{Text: atLimit + "a"})
	assert.ErrorIs(t, err, service.ErrNoteTooLarge)
}

func TestNoteServiceCreateEncrypted(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	cipher := []byte{0x01, 0x02, 0x03}
	m.box.EXPECT().Encrypt([]byte("secret"), "pw").Return(cipher, nil)

	draft, err := svc.Create(service.CreateNoteParams{Text: "secret", Password: "pw"})
	require.NoError(t, err)

	payload, ok := draft.Payload.(models.EncryptedPayload)
	require.True(t, ok)
	assert.Equal(t, cipher, payload.Data)
	assert.True(t, draft.Metadata.Encrypted)
}

func TestNoteServiceCreateEncryptionDisabled(t *testing.T) {
	cfg := testAppConfig()
	cfg.EncryptionEnabled = false
	svc, _ := newTestNoteService(t, cfg)

	_, err := svc.Create(service.CreateNoteParams{Text: "secret", Password: "pw"})
	assert.ErrorIs(t, err, service.ErrEncryptionDisabled)
}

func TestNoteServiceSubmit(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	draft, err := svc.Create(service.CreateNoteParams{Text: "hello", TTL: 86400 * time.Second})
	require.NoError(t, err)

	m.wallet.EXPECT().
		SubmitCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub models.StorageSubmission) (string, error) {
			assert.Equal(t, []byte("hello"), sub.Data)
			assert.Equal(t, uint64(43200), sub.TTLBlocks)
			assert.Contains(t, sub.StringAnnotations, models.StringAnnotation{Key: models.KeyEncrypted, Value: "false"})
			assert.Contains(t, sub.StringAnnotations, models.StringAnnotation{Key: models.KeyAppID, Value: models.AppID})
			return "0xtx1", nil
		})
	m.ledger.EXPECT().MarkPending("0xacc", "0xtx1").Return(nil)

	txID, err := svc.Submit(context.Background(), draft, "0xacc")
	require.NoError(t, err)
	assert.Equal(t, "0xtx1", txID)
}

func TestNoteServiceSubmitLedgerFailureKeepsTxID(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	draft, err := svc.Create(service.CreateNoteParams{Text: "hello"})
	require.NoError(t, err)

	m.wallet.EXPECT().SubmitCreate(gomock.Any(), gomock.Any()).Return("0xtx2", nil)
	m.ledger.EXPECT().MarkPending("0xacc", "0xtx2").Return(assert.AnError)

	txID, err := svc.Submit(context.Background(), draft, "0xacc")
	assert.Error(t, err)
	// the chain write happened, so the id must survive the bookkeeping error
	assert.Equal(t, "0xtx2", txID)
}

func TestNoteServiceSubmitWithoutTTL(t *testing.T) {
	svc, _ := newTestNoteService(t, testAppConfig())

	draft := models.NoteDraft{Payload: models.PlaintextPayload{Text: "hello"}}
	_, err := svc.Submit(context.Background(), draft, "0xacc")
	assert.ErrorIs(t, err, models.ErrMissingTTL)
}

func storedAnnotations(language, encrypted string) []models.StringAnnotation {
	return []models.StringAnnotation{
		{Key: models.KeyVersion, Value: models.AnnotationVersion},
		{Key: models.KeyLanguage, Value: language},
		{Key: models.KeyAppID, Value: models.AppID},
		{Key: models.KeyEncrypted, Value: encrypted},
	}
}

func TestNoteServiceFetchPlaintext(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	meta := models.EntityMetaData{
		ExpiresAtBlock:     500,
		StringAnnotations:  storedAnnotations("go", "false"),
		NumericAnnotations: []models.NumericAnnotation{{Key: models.KeyCreatedAt, Value: 1700000000}},
	}
	m.storage.EXPECT().GetEntityMetaData(gomock.Any(), "0xnote").Return(meta, nil)
	m.storage.EXPECT().GetStorageValue(gomock.Any(), "0xnote").Return([]byte("hello"), nil)

	note, err := svc.Fetch(context.Background(), "0xnote")
	require.NoError(t, err)

	text, ok := note.PlaintextText()
	require.True(t, ok)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "go", note.Metadata.Language)
	assert.Equal(t, uint64(500), note.Metadata.ExpiresAtBlock)
	assert.Equal(t, int64(1700000000), note.Metadata.CreatedAt)
}

func TestNoteServiceFetchEncrypted(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	meta := models.EntityMetaData{
		StringAnnotations: storedAnnotations("plaintext", "true"),
	}
	cipher := []byte{0xde, 0xad}
	m.storage.EXPECT().GetEntityMetaData(gomock.Any(), "0xnote").Return(meta, nil)
	m.storage.EXPECT().GetStorageValue(gomock.Any(), "0xnote").Return(cipher, nil)

	note, err := svc.Fetch(context.Background(), "0xnote")
	require.NoError(t, err)

	assert.True(t, note.Encrypted())
	payload, ok := note.Payload.(models.EncryptedPayload)
	require.True(t, ok)
	assert.Equal(t, cipher, payload.Data)
}

func TestNoteServiceFetchUnknownLanguageFallsBack(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	meta := models.EntityMetaData{
		StringAnnotations: storedAnnotations("brainfuck--nonexistent", "false"),
	}
	m.storage.EXPECT().GetEntityMetaData(gomock.Any(), "0xnote").Return(meta, nil)
	m.storage.EXPECT().GetStorageValue(gomock.Any(), "0xnote").Return([]byte("x"), nil)

	note, err := svc.Fetch(context.Background(), "0xnote")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLanguage, note.Metadata.Language)
}

func TestNoteServiceFetchNotFound(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	m.storage.EXPECT().GetEntityMetaData(gomock.Any(), "0xgone").Return(models.EntityMetaData{}, adapter.ErrEntityNotFound)

	_, err := svc.Fetch(context.Background(), "0xgone")
	assert.ErrorIs(t, err, service.ErrNoteNotFound)
}

func TestNoteServiceFetchUnsupportedVersion(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	meta := models.EntityMetaData{
		StringAnnotations: []models.StringAnnotation{
			{Key: models.KeyVersion, Value: "2.0.0"},
			{Key: models.KeyAppID, Value: models.AppID},
		},
	}
	m.storage.EXPECT().GetEntityMetaData(gomock.Any(), "0xnote").Return(meta, nil)

	_, err := svc.Fetch(context.Background(), "0xnote")
	assert.ErrorIs(t, err, models.ErrInvalidVersion)
}

func TestNoteServiceDecrypt(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	note := models.Note{
		Payload:  models.EncryptedPayload{Data: []byte{0x01}},
		Metadata: models.AnnotationRecord{Encrypted: true, Language: "go"},
	}
	m.box.EXPECT().Decrypt([]byte{0x01}, "pw").Return([]byte("secret"), nil)

	decrypted, err := svc.Decrypt(note, "pw")
	require.NoError(t, err)

	text, ok := decrypted.PlaintextText()
	require.True(t, ok)
	assert.Equal(t, "secret", text)
	assert.False(t, decrypted.Metadata.Encrypted)
	assert.Equal(t, "go", decrypted.Metadata.Language)

	// the input note is untouched
	assert.True(t, note.Encrypted())
	assert.True(t, note.Metadata.Encrypted)
}

func TestNoteServiceDecryptWrongPassword(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	note := models.Note{Payload: models.EncryptedPayload{Data: []byte{0x01}}}
	m.box.EXPECT().Decrypt([]byte{0x01}, "nope").Return(nil, assert.AnError)

	_, err := svc.Decrypt(note, "nope")
	assert.ErrorIs(t, err, service.ErrDecryptionFailed)
}

func TestNoteServiceDecryptPlaintext(t *testing.T) {
	svc, _ := newTestNoteService(t, testAppConfig())

	note := models.Note{Payload: models.PlaintextPayload{Text: "open"}}
	_, err := svc.Decrypt(note, "pw")
	assert.ErrorIs(t, err, service.ErrNotEncrypted)
}

func TestNoteServiceExtendAndDelete(t *testing.T) {
	svc, m := newTestNoteService(t, testAppConfig())

	m.wallet.EXPECT().SubmitExtend(gomock.Any(), "0xnote", uint64(100)).Return("0xext", nil)
	m.wallet.EXPECT().SubmitDelete(gomock.Any(), "0xnote").Return("0xdel", nil)

	txID, err := svc.Extend(context.Background(), "0xnote", 100)
	require.NoError(t, err)
	assert.Equal(t, "0xext", txID)

	txID, err = svc.Delete(context.Background(), "0xnote")
	require.NoError(t, err)
	assert.Equal(t, "0xdel", txID)
}
