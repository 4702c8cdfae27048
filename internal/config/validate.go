package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/vvka-141/movieapi/pkg/movieapi"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their environment variable name.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("env"); name != "" {
				return name
			}
			return f.Name
		})
	})
	return validate
}

var messageTemplates = map[string]string{
	"required":        "%s is required",
	"required_if":     "%s is required for this AUTH_METHOD",
	"required_unless": "%s is required",
	"hostname_port":   "%s must be host:port",
	"url":             "%s must be a URL",
}

var messageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
}

// Validate checks the settings and wraps every failure in ErrInvalidConfig.
func (s *Settings) Validate() error {
	s.Database.Source = strings.ToLower(s.Database.Source)
	s.Database.AuthMethod = strings.ToLower(s.Database.AuthMethod)

	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", movieapi.ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, translate(fe))
	}
	return fmt.Errorf("%w: %s", movieapi.ErrInvalidConfig, strings.Join(msgs, "; "))
}

func translate(fe validator.FieldError) string {
	if tmpl, ok := messageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, fe.Field())
	}
	if tmpl, ok := messageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

// ConnectionConfig converts validated database settings for the connector.
func (s *Settings) ConnectionConfig() (*movieapi.ConnectionConfig, error) {
	auth, err := movieapi.ParseAuthMethod(s.Database.AuthMethod)
	if err != nil {
		return nil, err
	}

	db := s.Database
	return &movieapi.ConnectionConfig{
		Host:              db.Host,
		Port:              db.Port,
		Database:          db.Name,
		Username:          db.Username,
		Password:          db.Password,
		SSLMode:           db.SSLMode,
		AuthMethod:        auth,
		AppName:           "movieapi",
		ConnectTimeout:    movieapi.DefaultConnectTimeout,
		ConnectRetries:    db.ConnectRetries,
		AWSRegion:         db.AWSRegion,
		GoogleInstance:    db.GoogleInstance,
		AzureTenantID:     db.AzureTenantID,
		AzureClientID:     db.AzureClientID,
		AzureClientSecret: db.AzureClientSecret,
	}, nil
}
