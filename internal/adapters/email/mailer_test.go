package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "events@example.edu", "Campus Events", discardLogger())

	err := m.Send("meera@example.edu", "Invitation", "<p>hi</p>", "")
	require.NoError(t, err)
	require.NotNil(t, client.input)
	assert.Equal(t, "Campus Events <events@example.edu>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"meera@example.edu"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Invitation", aws.ToString(client.input.Message.Subject.Data))
	require.NotNil(t, client.input.Message.Body.Html)
	assert.Nil(t, client.input.Message.Body.Text)
}

func TestSESMailer_SendError(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	m := newSESMailer(client, "events@example.edu", "", discardLogger())

	err := m.Send("meera@example.edu", "Invitation", "", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
	assert.Equal(t, "events@example.edu", aws.ToString(client.input.Source))
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name     string
		config   MailerConfig
		wantNoop bool
		wantErr  bool
	}{
		{name: "noop", config: MailerConfig{Provider: "noop"}, wantNoop: true},
		{name: "empty provider", config: MailerConfig{}, wantNoop: true},
		{name: "unknown provider falls back", config: MailerConfig{Provider: "smtp"}, wantNoop: true},
		{name: "ses requires from address", config: MailerConfig{Provider: "ses"}, wantErr: true},
		{
			name:   "ses",
			config: MailerConfig{Provider: "ses", FromAddress: "events@example.edu", SES: SESConfig{Region: "ap-south-1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, discardLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isNoop := m.(*noopMailer)
			assert.Equal(t, tt.wantNoop, isNoop)
			if isNoop {
				require.NoError(t, m.Send("a@example.edu", "s", "", "t"))
			}
		})
	}
}
