package auphonic

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestGo_Wait(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	p := Go(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})

	got, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestGo_DoneClosesAfterCompletion(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	release := make(chan struct{})
	p := Go(context.Background(), func(context.Context) (string, error) {
		<-release
		return "", errors.New("boom")
	})

	select {
	case <-p.Done():
		t.Fatal("Done closed before the operation finished")
	default:
	}

	close(release)
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed")
	}

	_, err := p.Wait()
	assert.EqualError(t, err, "boom")
}

func TestGo_Cancellation(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	p := Go(ctx, func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})

	<-started
	cancel()

	_, err := p.Wait()
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, IsCanceled(err))
}

func TestGo_WaitRepanics(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	p := Go(context.Background(), func(context.Context) (int, error) {
		panic("kaboom")
	})

	<-p.Done()
	assert.Panics(t, func() { _, _ = p.Wait() })
}

func TestRun_ClientOperation(t *testing.T) {
	srv := newMockServer(t, http.StatusOK, envelope(`{"uuid":"x","status":3}`))
	client := newAuthenticatedClient(t, srv)

	production, err := Run(context.Background(), func(ctx context.Context) (*Production, error) {
		return client.GetProduction(ctx, "x")
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDone, production.Status)
}

func TestGo_ErrorsKeepTheirCategory(t *testing.T) {
	srv := newMockServer(t, http.StatusOK, envelope(`null`))
	client := newTestClient(t, srv)

	_, err := Go(context.Background(), func(ctx context.Context) ([]Preset, error) {
		return client.GetPresets(ctx, 0, 0)
	}).Wait()

	requireAuthError(t, err, "No authentication credentials provided.")
	assert.Zero(t, srv.hits.Load())
}
