package commands

var LoadForms = loadForms
