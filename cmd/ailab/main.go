package main

import "github.com/Mathew005/ai-learning-repo/internal/app"

func main() {
	err := app.NewAILabApp().Run()
	if err != nil {
		panic(err)
	}
}
