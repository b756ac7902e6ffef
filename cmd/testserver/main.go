//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	channel := flag.String("channel", "cek_info", "Channel name served under /s/<channel>")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: testserver [options] <channel-page.html>")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	pagePath := args[0]
	if _, err := os.Stat(pagePath); os.IsNotExist(err) {
		log.Fatalf("Channel page file does not exist: %s", pagePath)
	}

	route := "/s/" + *channel
	http.HandleFunc(route, func(w http.ResponseWriter, _ *http.Request) {
		serveHTMLFile(w, pagePath)
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("Channel page: %s -> CHANNEL_URL=http://localhost%s%s", pagePath, addr, route)
	log.Println("\nThe file is read on each request, so you can add posts while the server is running.")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func serveHTMLFile(w http.ResponseWriter, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read file: %v", err), http.StatusInternalServerError)
		log.Printf("Error reading %s: %v", path, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(content)
	log.Printf("Served %s (%d bytes)", path, len(content))
}
