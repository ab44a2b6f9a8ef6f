// Package runner executes external commands (apt-get, rsync, npm, systemctl,
// nginx, certbot) while streaming and capturing their output.
package runner
