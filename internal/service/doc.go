// Package service contains the application-specific use cases and business
// logic. It orchestrates validation (internal/validation) and the task
// repository (defined in internal/store) to fulfill the API's operations.
//
// Key points:
//
//  1. Services receive their repository through constructor injection and
//     never depend on a specific storage implementation.
//  2. Mutations return a Result carrying a success flag, a user-facing error
//     message and the stored task.
//  3. Unexpected failures, including panics, are logged and replaced by a
//     generic message; they never escape to the caller.
package service
