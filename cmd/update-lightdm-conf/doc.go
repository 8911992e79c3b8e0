// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Update-lightdm-conf switches LightDM from the bbqlinux greeter to the
// GTK greeter. It rewrites the greeter-session line of
// /etc/lightdm/lightdm.conf, leaves every other line as it was, and
// renames the result over the original in one atomic step. Run without
// flags it needs no configuration; --config, --file, --dry-run, and
// --force adjust the target and behavior.
package main
