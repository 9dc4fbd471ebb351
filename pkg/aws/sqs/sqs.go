package sqs

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
)

const (
	groupId    = "default"
	fifoSuffix = ".fifo"
)

// Ensure Client implements ClientIFace
var _ ClientIFace = (*Client)(nil)

type ClientIFace interface {
	Connect() error
	Send(ctx context.Context, queueUrl string, message string) error
}

type Client struct {
	cfg       *aws.Config
	sqsClient sqsiface.SQSAPI
	session   *session.Session
}

func New() *Client {
	cfg := aws.NewConfig()
	return &Client{
		cfg: cfg,
	}
}

func (c *Client) Connect() error {
	awsSession, err := session.NewSession(c.cfg)
	if err != nil {
		return err
	}
	c.session = awsSession
	c.sqsClient = sqs.New(c.session, c.cfg)
	return nil
}

func (c *Client) Send(ctx context.Context, queueUrl string, msg string) error {
	in := &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueUrl),
		MessageBody: aws.String(msg),
	}
	// FIFO queues require a group, standard queues reject one
	if strings.HasSuffix(queueUrl, fifoSuffix) {
		in.MessageGroupId = aws.String(groupId)
	}

	_, err := c.sqsClient.SendMessageWithContext(ctx, in)
	return err
}
