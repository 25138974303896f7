package assistantService

import (
	"errors"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/pkg/nlp"
)

type fakePublisher struct {
	published [][]byte
	err       error
}

func (f *fakePublisher) SetAudioCache(ctx context.Context, key string, audio []byte, expiration time.Duration) error {
	return nil
}

func (f *fakePublisher) GetAudioCache(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("cache miss")
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, payload)
	return nil
}

func (f *fakePublisher) Subscribe(ctx context.Context, channel string) <-chan []byte {
	ch := make(chan []byte)
	close(ch)
	return ch
}

func newBroadcastTestSink(direct *fakeSink, publisher *fakePublisher) ActionSink {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewBroadcastSink(log, publisher, direct)
}

func TestBroadcastSinkAnnouncesAcceptedTask(t *testing.T) {
	direct := &fakeSink{}
	publisher := &fakePublisher{}
	sink := newBroadcastTestSink(direct, publisher)

	err := sink.CreateTask(context.Background(), "user-1", "pay the bills", nlp.PriorityHigh)
	require.NoError(t, err)

	require.Len(t, direct.actions, 1)
	require.Len(t, publisher.published, 1)

	var event actionEvent
	require.NoError(t, jsoniter.Unmarshal(publisher.published[0], &event))
	assert.Equal(t, "task_created", event.Kind)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, "pay the bills", event.Content)
	assert.Equal(t, "high", event.Priority)
}

func TestBroadcastSinkFallsBackWhenDirectSinkFails(t *testing.T) {
	direct := &fakeSink{err: errors.New("database unavailable")}
	publisher := &fakePublisher{}
	sink := newBroadcastTestSink(direct, publisher)

	err := sink.CreateNote(context.Background(), "user-1", "remember the wifi password")
	require.NoError(t, err)

	assert.Empty(t, direct.actions)
	require.Len(t, publisher.published, 1)

	var event actionEvent
	require.NoError(t, jsoniter.Unmarshal(publisher.published[0], &event))
	assert.Equal(t, "note_created", event.Kind)
	assert.Equal(t, "remember the wifi password", event.Content)
}

func TestBroadcastSinkFailsOnlyWhenBothPathsFail(t *testing.T) {
	directErr := errors.New("database unavailable")
	direct := &fakeSink{err: directErr}
	publisher := &fakePublisher{err: errors.New("redis down")}
	sink := newBroadcastTestSink(direct, publisher)

	err := sink.CreateTask(context.Background(), "user-1", "pay the bills", nlp.PriorityMedium)
	assert.ErrorIs(t, err, directErr)
}

func TestBroadcastSinkSwallowsAnnounceFailureAfterDirectSuccess(t *testing.T) {
	direct := &fakeSink{}
	publisher := &fakePublisher{err: errors.New("redis down")}
	sink := newBroadcastTestSink(direct, publisher)

	err := sink.CreateNote(context.Background(), "user-1", "the meeting moved to thursday")
	require.NoError(t, err)
	require.Len(t, direct.actions, 1)
}