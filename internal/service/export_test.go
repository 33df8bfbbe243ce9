// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// SetBcryptCost lowers the bcrypt work factor so tests stay fast.
func SetBcryptCost(s AuthService, cost int) {
	s.(*authService).bcryptCost = cost
}
