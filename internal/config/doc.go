// Package config provides configuration loading for obaentry.
//
// # Overview
//
// Configuration is read from an optional YAML file and then overridden by
// environment variables. Values the file leaves out keep their defaults.
//
//	cfg, err := config.LoadConfig("/etc/obaentry/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
//	    log.Fatal(errs[0])
//	}
//
// # Environment Variables
//
// Inside the YAML file, ${VAR} and ${VAR:-default} are replaced before
// parsing. After parsing, variables named OBAENTRY_<SECTION>_<KEY> override
// the corresponding setting:
//
//	OBAENTRY_LDAP_URL=ldaps://ldap.example.com
//	OBAENTRY_LDAP_BIND_PASSWORD=secret
//	OBAENTRY_LOG_LEVEL=debug
//	OBAENTRY_ENTRY_REQUIRED=cn,sn
//
// # Example Configuration
//
//	ldap:
//	  url: "ldap://ldap.example.com:389"
//	  bindDN: "cn=admin,dc=example,dc=com"
//	  bindPassword: "${LDAP_PASSWORD}"
//	  startTLS: true
//	  timeout: 10s
//	  removeMissingOK: true
//
//	logging:
//	  level: "info"
//	  format: "json"
//	  output: "stderr"
//
//	entry:
//	  required: ["cn"]
//	  objectClasses: ["inetOrgPerson"]
package config
