// Package box provides Box[T], an immutable single-value container with
// Map and FlatMap. A Box cannot be empty and cannot fail.
package box
