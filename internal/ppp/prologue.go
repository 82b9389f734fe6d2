package ppp

import "io"

const prologue = `// $Id$

/**
 * @file <filename>
 *
 * This include file is for Freescale DSP (DSP563xx).  The data is transfered
 * via CHIRP commands when the device is booted into PPP operational mode.
 *
 * @brief This file contains the data to be transfered into a DSP563xx's
 *         RAM and is registered as a SLOT PPP
 *
 * @author <author>
 *
 * @version <version>
 */

// $Log$

#include <stdint.h>

`

// WritePrologue writes the boilerplate that opens every generated include
// file, ahead of the packet declarations.
func WritePrologue(w io.Writer) error {
	_, err := io.WriteString(w, prologue)
	return err
}
