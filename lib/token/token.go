// Copyright (C) 2026 The Marquee Authors.
//
// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Marquee is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Marquee.  If not, see <https://www.gnu.org/licenses/>.

package token

import (
	"errors"
	"time"

	"github.com/defsub/marquee/config"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	ErrInvalidTokenMethod  = errors.New("invalid token method")
	ErrInvalidTokenSubject = errors.New("invalid subject")
	ErrInvalidToken        = errors.New("invalid token")
)

// Tokens signs and verifies short-lived form tokens with the server secret.
// A token is bound to the record it was issued for via the subject claim so
// a form submission cannot be replayed against another record.
type Tokens struct {
	secret []byte
	age    time.Duration
}

func NewTokens(config *config.Config) Tokens {
	return Tokens{
		secret: []byte(config.Server.Secret),
		age:    config.Server.TokenAge,
	}
}

func (t Tokens) NewFormToken(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Id:        uuid.New().String(),
		Subject:   subject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(t.age).Unix(),
	})
	return token.SignedString(t.secret)
}

func (t Tokens) CheckFormToken(value, subject string) error {
	token, err := jwt.ParseWithClaims(value, &jwt.StandardClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidTokenMethod
			}
			return t.secret, nil
		})
	if err != nil {
		return err
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok {
		return ErrInvalidToken
	}
	if claims.Subject != subject {
		return ErrInvalidTokenSubject
	}
	return nil
}
