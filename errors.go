/*
 * errors.go, part of molfeat.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package feat

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

//Kinds of failure. Every error returned by the package wraps one of these,
//so they can be checked with errors.Is.
var (
	//transform invoked before a successful fit
	ErrNotFitted = errors.New("molfeat: featurizer not fitted")
	//a molecule exceeds a size bound learned at fit time
	ErrSizeMismatch = errors.New("molfeat: molecule exceeds fitted size")
	//unrecognized or invalid option
	ErrUnknownConfiguration = errors.New("molfeat: unknown configuration")
	//element missing from the reference tables
	ErrUnknownElement = errors.New("molfeat: unknown element")
)

//Error is the error type returned by molfeat. Besides the message,
//it keeps the chain of functions the error went through (the decoration)
//and the kind of failure.
type Error struct {
	message string
	deco    []string
	kind    error
}

func newError(kind error, caller, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), deco: []string{caller}, kind: kind}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Unwrap returns the kind of the error.
func (err *Error) Unwrap() error { return err.kind }

//errDecorate decorates err with the caller's name, if err is,
//or wraps, an *Error. It returns err.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
