// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core packages depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - FileParser: Parses a file at a path into text blocks
//   - ChatClient: Streams raw messages from a prepared chat session
//   - VKAPI: VK history endpoint and screen-name resolution
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any connector, parser, or adapter package
package driven
