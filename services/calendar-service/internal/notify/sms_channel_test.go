package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/kavenegar/kavenegar-go"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sender    string
	receptors []string
	message   string
	res       []kavenegar.Message
	err       error
}

func (f *fakeSender) Send(sender string, receptor []string, message string, params *kavenegar.MessageSendParam) ([]kavenegar.Message, error) {
	f.sender, f.receptors, f.message = sender, receptor, message
	return f.res, f.err
}

func TestNewSMSChannel_Selection(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	tests := []struct {
		name      string
		cfg       Config
		wantNoop  bool
		wantLevel logrus.Level
	}{
		{"unset", Config{}, true, logrus.WarnLevel},
		{"unknown", Config{Provider: "twilio", APIKey: "k"}, true, logrus.WarnLevel},
		{"kavenegar without key", Config{Provider: "kavenegar"}, true, logrus.WarnLevel},
		{"kavenegar", Config{Provider: "kavenegar", APIKey: "k"}, false, logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()
			ch := NewSMSChannel(tt.cfg, log)

			_, isNoop := ch.(*noopSMSChannel)
			assert.Equal(t, tt.wantNoop, isNoop)
			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, tt.wantLevel, hook.LastEntry().Level)
		})
	}

	ch := NewSMSChannel(Config{Provider: "kavenegar", APIKey: "k"}, log)
	assert.Equal(t, "10008663", ch.(*kavenegarSMSChannel).sender, "default sender")
}

func TestNoopSMSChannel(t *testing.T) {
	_, err := (&noopSMSChannel{}).Send(context.Background(), []string{"09120000000"}, "hi")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestKavenegarSMSChannel_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := &fakeSender{res: []kavenegar.Message{{MessageID: 8792343}}}
		ch := &kavenegarSMSChannel{messages: f, sender: "2000500666"}

		id, err := ch.Send(ctx, []string{"09121234567", "09351234567"}, "نصب فردا: ۲ مورد")
		require.NoError(t, err)
		assert.Equal(t, "8792343", id)
		assert.Equal(t, "2000500666", f.sender)
		assert.Equal(t, []string{"09121234567", "09351234567"}, f.receptors)
		assert.Equal(t, "نصب فردا: ۲ مورد", f.message)
	})

	t.Run("validation", func(t *testing.T) {
		ch := &kavenegarSMSChannel{messages: &fakeSender{}}
		_, err := ch.Send(ctx, nil, "x")
		assert.Error(t, err)
		_, err = ch.Send(ctx, []string{"09121234567"}, "")
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		f := &fakeSender{}
		_, err := (&kavenegarSMSChannel{messages: f}).Send(cctx, []string{"09121234567"}, "x")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, f.message, "provider not called")
	})

	t.Run("provider error", func(t *testing.T) {
		boom := errors.New("boom")
		ch := &kavenegarSMSChannel{messages: &fakeSender{err: boom}}
		_, err := ch.Send(ctx, []string{"09121234567"}, "x")
		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "failed to send SMS")
	})

	t.Run("empty response", func(t *testing.T) {
		ch := &kavenegarSMSChannel{messages: &fakeSender{}}
		_, err := ch.Send(ctx, []string{"09121234567"}, "x")
		assert.ErrorContains(t, err, "no response entries")
	})
}
