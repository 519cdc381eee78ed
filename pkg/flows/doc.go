/*
Package flows declares the built-in AfriSecure Finance menu definitions and
their outcome generators.

Flows are immutable, process-wide configuration. The package exposes a
Registry keyed by flow ID; the engine looks flows up there and never mutates
them. Besides the five built-ins (router, balance, loan, report, tips),
additional menu flows can be loaded from YAML flow packs, making new flows
addable via data rather than code.
*/
package flows
