package main

import (
	"context"
	"os"
	"rolodex/internal/domain/sqlite"
	"rolodex/internal/domain/sqlite/repository"
	"rolodex/internal/http/handler"
	"rolodex/internal/infrastructure/aws/storage"
	"rolodex/internal/infrastructure/docparse"
	"rolodex/internal/infrastructure/openai"
	"rolodex/internal/service"
	"rolodex/internal/service/jobs"
	"rolodex/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/rolodex/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Completion API for summaries/titles; the pipeline degrades to
	// fixed fallbacks when it is not configured.
	var ai service.Summarizer
	ai, err = openai.NewClient()
	if err != nil {
		log.Warnf("completion API disabled: %v", err)
		ai = openai.Unavailable{}
	}

	// S3 document archiving is optional as well
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		log.Warnf("document archiving disabled: %v", err)
		s3Client = nil
	}

	// Getting repos
	contactRepo := repository.NewContactRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)

	// Getting services
	contactService := service.NewContactService(contactRepo, prefRepo, validate)
	noteService := service.NewNoteService(noteRepo, contactRepo, validate)
	companyService := service.NewCompanyService(companyRepo, validate)
	reminderService := service.NewReminderService(reminderRepo, contactRepo, validate)
	prefService := service.NewPreferenceService(prefRepo, validate)
	documentService := service.NewDocumentService(docparse.NewDocxExtractor(), ai, s3Client)
	regenerator := jobs.NewSummaryRegenerator(noteRepo, ai)

	// Getting handlers
	contactRoutes := handler.NewContactDefault(contactService)
	noteRoutes := handler.NewNoteDefault(noteService, regenerator)
	companyRoutes := handler.NewCompanyDefault(companyService)
	reminderRoutes := handler.NewReminderDefault(reminderService)
	prefRoutes := handler.NewPreferenceDefault(prefService)
	documentRoutes := handler.NewDocumentDefault(documentService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("30M"))

	// Contacts
	e.GET("/api/contacts", contactRoutes.GetContacts)
	e.POST("/api/contacts", contactRoutes.CreateContact)
	e.GET("/api/contacts/search", contactRoutes.SearchContacts)
	e.GET("/api/contacts/duplicates/:name", contactRoutes.FindDuplicates)
	e.POST("/api/contacts/merge", contactRoutes.MergeContacts)
	e.GET("/api/contacts/:id", contactRoutes.GetContact)
	e.PATCH("/api/contacts/:id", contactRoutes.UpdateContact)
	e.DELETE("/api/contacts/:id", contactRoutes.DeleteContact)

	// Notes
	e.GET("/api/contacts/:id/notes", noteRoutes.GetContactNotes)
	e.POST("/api/notes", noteRoutes.CreateNote)
	e.POST("/api/notes/regenerate-summaries", noteRoutes.RegenerateSummaries)
	e.PATCH("/api/notes/:id", noteRoutes.UpdateNote)

	// Companies
	e.GET("/api/companies", companyRoutes.GetCompanies)
	e.POST("/api/companies", companyRoutes.CreateCompany)

	// Reminders
	e.GET("/api/reminders", reminderRoutes.GetReminders)
	e.POST("/api/reminders", reminderRoutes.CreateReminder)
	e.PATCH("/api/reminders/:id", reminderRoutes.UpdateReminder)
	e.DELETE("/api/reminders/:id", reminderRoutes.DeleteReminder)

	// Preferences
	e.GET("/api/preferences", prefRoutes.GetPreferences)
	e.PATCH("/api/preferences", prefRoutes.UpdatePreferences)

	// Documents
	e.POST("/api/documents/process", documentRoutes.ProcessDocument)
	e.POST("/api/documents/process/batch", documentRoutes.ProcessBatch)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	port := os.Getenv("PORT")
	if port == "" {
		port = "7070"
	}

	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("isodate", validators.ISODate)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
