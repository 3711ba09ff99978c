// Package exeq provides a Go SDK for the exeq session API.
//
// exeq runs remote browser-automation sessions. Each session exposes a
// Chrome DevTools Protocol endpoint and a VNC endpoint, and can optionally
// record itself or route traffic through a residential proxy. This SDK
// provides a small, idiomatic Go interface over the exeq REST API.
//
// # Installation
//
//	go get github.com/exeq-dev/exeq-go
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/exeq-dev/exeq-go"
//	)
//
//	func main() {
//	    client, err := exeq.NewClient("my-api-key")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    session, err := client.CreateSession(context.Background(), &exeq.CreateSessionOptions{
//	        Duration: "30m",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("Session %s (%s): %s\n", session.ID, session.Status, session.CDPURL)
//	}
//
// # Client Configuration
//
// The client is configured with functional options:
//
//	client, err := exeq.NewClient(apiKey,
//	    exeq.WithBaseURL("https://staging.exeq.dev"),
//	    exeq.WithTimeout(10*time.Second),
//	    exeq.WithLogger(zerolog.New(os.Stderr).Level(zerolog.DebugLevel)),
//	)
//
// # Error Handling
//
// Server and transport failures are reported as [*Error]. Use errors.Is
// with the sentinel errors, or errors.As to inspect the code and status:
//
//	session, err := client.GetSession(ctx, id)
//	if errors.Is(err, exeq.ErrNotFound) {
//	    // Handle missing session
//	}
//
// A response that is missing a field the SDK guarantees to callers is
// reported as [*MappingError] and never as a partially filled result.
//
// # Architecture
//
// The SDK is built in two layers:
//
//   - Wrapper Layer: the [Client] in this package, with context support,
//     typed errors and stable result types
//   - Generated Layer: HTTP client generated from the server's swagger
//     definition (github.com/exeq-dev/exeq-go/generated)
//
// Users should only interact with the wrapper layer. The generated
// layer is an implementation detail and may change between versions.
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines.
// It holds only immutable configuration after construction.
package exeq
