package cli

const shortUsage = "uniquely numbers Reaticulate LSBs"

const longUsage = `reabank - uniquely numbers Reaticulate LSBs

  inputfile       path to input Reabank file, or a directory of .reabank files
  [outputfile]    optional. path to output Reabank file. defaults to input path

== OVERVIEW

Numbers the LSBs of the articulations in a Reabank file so that every
articulation name gets one unique LSB across the whole file. Useful when a
library's articulations do not map cleanly onto a standard such as UACC.

Articulations are numbered in order of appearance, starting from 1. Given

  Bank 1 1 OT-BS - Violins I Basic
  //! c=legato i=legato o=@2
  32 Legato
  //! c=long i=note-half o=@4
  15 Sustains Immediate
  //! c=long i=accented-half o=@5
  8 Sustains Accented

the articulation lines become

  1 Legato
  2 Sustains Immediate
  3 Sustains Accented

Any later articulation named "Sustains Immediate", in any bank, is numbered 2
as well, so MIDI recorded for one instrument plays the same articulation on
another.

With -m|--maintain only LSBs set to 0 are numbered; every other LSB is kept,
so new articulations can be added without disturbing existing projects.

== LSB DEFINITIONS

LSBs can be fixed in one place with "//def-lsb" lines:

  //def-lsb 1 Legato
  //def-lsb 2 Legato Fingered
  //def-lsb 4 Sustains Immediate

All definitions are read before any articulation is numbered, wherever they
appear in the file. A definition set to 0 is given the next free LSB:

  //def-lsb 0 Legato
  //def-lsb 4 Legato Ostinato Arp
  //def-lsb 0 Sustains Accented

becomes

  //def-lsb 1 Legato
  //def-lsb 4 Legato Ostinato Arp
  //def-lsb 2 Sustains Accented

Use -r|--reset to renumber every definition, even those not set to 0.

== CONFIGURATION

Defaults can be set in reabank.hcl (or the file given with --config):

  numbering {
    maintain = true
  }
  output {
    show   = true
    format = "yaml"
  }
  logging {
    level = env.REABANK_LOG_LEVEL
  }

or with the REABANK_MAINTAIN, REABANK_RESET, REABANK_SHOW,
REABANK_SHOW_FORMAT, REABANK_LOG_LEVEL and REABANK_LOG_FORMAT environment
variables (a .env file in the working directory is loaded first). Flags given
on the command line always win.
`
