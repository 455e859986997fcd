package main

import (
  "fmt"
  "os"
  "github.com/fairwork/contracts-backend/internal/app"
)

func main() {
  a, err := app.New()
  if err != nil {
    fmt.Printf("Failed to init app: %v\n", err)
    os.Exit(1)
  }
  defer a.Close()

  addr := ":" + a.Cfg.Port
  a.Log.Info("Server listening", "addr", addr)
  if err := a.Run(addr); err != nil {
    a.Log.Error("Server failed", "error", err)
  }
}









