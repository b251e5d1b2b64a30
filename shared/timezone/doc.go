// Package timezone provides timezone utilities for the application.
//
// The cafe catalog's opening hours, the recommendation engine's hour-of-day
// buckets and the booking wizard's date window all key off the configured
// application timezone, not the host clock's zone.
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Formatting and parsing in the app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use standard IANA timezone
// database names for reliable cross-platform compatibility.
package timezone
