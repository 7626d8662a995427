// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// RequirePrincipal is the authorization gate. It returns the principal of
// the AuthContext carried by ctx, or an UNAUTHENTICATED error when the
// context is anonymous or missing.
//
// It has no side effects and must be the first step of every protected
// operation.
func RequirePrincipal(ctx context.Context) (models.User, error) {
	user, ok := utils.GetAuthContext(ctx).Principal()
	if !ok {
		return models.User{}, app.Unauthenticated(app.MsgAuthenticationRequired)
	}
	return user, nil
}
