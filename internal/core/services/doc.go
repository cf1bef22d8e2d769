// Package services contains the core business logic for briefly.
// Services implement the driving ports and depend only on domain
// types and driven ports, never on concrete adapters.
package services
