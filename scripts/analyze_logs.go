package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors     int
	LoginSuccess    int
	LoginFailures   int
	Registrations   int
	RefreshFailures int
	GateDenials     int
	ProductsCreated int
	ProductsDeleted int
	UserActivities  map[string]int
	ErrorPatterns   map[string]int
}

func main() {
	today := time.Now().Format("2006-01-02")
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	stats := &LogStats{
		UserActivities: make(map[string]int),
		ErrorPatterns:  make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		if strings.Contains(line, "Login attempt failed") {
			stats.LoginFailures++
			extractUserActivity(line, stats)
		}

		if strings.Contains(line, "Token refresh failed") {
			stats.RefreshFailures++
		}

		// Role-gate denials answer 404 but are logged with the denied role
		if strings.Contains(line, "denied for") {
			stats.GateDenials++
		}

		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "User logged in") {
			stats.LoginSuccess++
			extractUserActivity(line, stats)
		}

		if strings.Contains(line, "User registered successfully") {
			stats.Registrations++
			extractUserActivity(line, stats)
		}

		if strings.Contains(line, "Product created successfully") {
			stats.ProductsCreated++
		}
		if strings.Contains(line, "deleted") && strings.Contains(line, "Product") {
			stats.ProductsDeleted++
		}
	}
}

func extractUserActivity(line string, stats *LogStats) {
	emailRegex := regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	if email := emailRegex.FindString(line); email != "" {
		stats.UserActivities[email]++
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	parts := strings.Split(line, " - ")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[len(parts)-1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Authentication Statistics:")
	fmt.Printf("   Successful Logins: %d\n", stats.LoginSuccess)
	fmt.Printf("   Failed Logins: %d\n", stats.LoginFailures)
	fmt.Printf("   Registrations: %d\n", stats.Registrations)
	fmt.Printf("   Failed Token Refreshes: %d\n", stats.RefreshFailures)

	fmt.Println("\n2. Access Control:")
	fmt.Printf("   Role-Gate Denials: %d\n", stats.GateDenials)

	fmt.Println("\n3. Catalog Activity:")
	fmt.Printf("   Products Created: %d\n", stats.ProductsCreated)
	fmt.Printf("   Products Deleted: %d\n", stats.ProductsDeleted)

	fmt.Println("\n4. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n5. Most Active Users:")
	printTopUsers(stats.UserActivities, 5)

	fmt.Println("\n6. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopUsers(users map[string]int, limit int) {
	type userActivity struct {
		email string
		count int
	}

	var activities []userActivity
	for email, count := range users {
		activities = append(activities, userActivity{email, count})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].count > activities[j].count
	})

	for i, activity := range activities {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d activities\n", activity.email, activity.count)
	}
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		message string
		count   int
	}

	var errorList []errorCount
	for msg, count := range errors {
		errorList = append(errorList, errorCount{msg, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.message, err.count)
	}
}
