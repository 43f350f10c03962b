package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/prabhashaj/EdututorAI/internal/container"
	"github.com/prabhashaj/EdututorAI/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		ClassroomHandler: c.ClassroomContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.NewV2(handler).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	addr := ":" + port
	log.Printf("EduTutor AI API listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
