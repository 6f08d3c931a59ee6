package utils

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesOnce   sync.Once
	sesClient *ses.Client
	sesErr    error
)

func client() (*ses.Client, error) {
	sesOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			sesErr = err
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient, sesErr
}

func sendEmail(to, subject, body string) error {
	c, err := client()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(os.Getenv("SES_FROM_ADDRESS")),
	}

	_, err = c.SendEmail(context.TODO(), input)
	return err
}

func SendMFAEmail(to, code string) error {
	body := fmt.Sprintf("Your ZenZone verification code is %s. It expires in 10 minutes.", code)
	return sendEmail(to, "ZenZone verification code", body)
}

func SendResetEmail(to, code string) error {
	body := fmt.Sprintf("Your ZenZone password reset code is %s. It expires in 15 minutes.\n\nIf you did not request this, you can ignore this email.", code)
	return sendEmail(to, "ZenZone password reset", body)
}
